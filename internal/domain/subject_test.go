package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePercentage(t *testing.T) {
	cases := []struct {
		total, score string
		want         string
	}{
		{"100", "85", "85.0%"},
		{"100", "100", "100.0%"},
		{"100", "0", "0.0%"},
		{"3", "1", "33.3%"},
		{"3", "2", "66.7%"},
		{"80", "100", "Error"},
		{"100", "150", "Error"},
		{"", "", "-"},
		{"", "50", "-"},
		{"0", "10", "-"},
		{"-5", "1", "-"},
		{"abc", "5", "-"},
		{"100", "", "0.0%"},
		{"100", "abc", "0.0%"},
	}
	for _, tc := range cases {
		got := ComputePercentage(tc.total, tc.score)
		assert.Equal(t, tc.want, got.String(), "total=%q score=%q", tc.total, tc.score)
	}
}

func TestComputePercentage_RoundsToOneDecimal(t *testing.T) {
	for total := 1; total <= 50; total++ {
		for score := 0; score <= total; score++ {
			p := ComputePercentage(fmt.Sprint(total), fmt.Sprint(score))
			require.Equal(t, PercentSet, p.State)
			assert.InDelta(t, float64(score)/float64(total)*100, p.Value, 0.05+1e-9,
				"score=%d total=%d", score, total)
			again := ComputePercentage(fmt.Sprint(total), fmt.Sprint(score))
			assert.Equal(t, p, again, "recomputation is idempotent")
		}
	}
}

func TestComputePercentage_NegativeZero(t *testing.T) {
	p := ComputePercentage("100", "-0.01")
	assert.Equal(t, "0.0%", p.String())
}

func TestSubjectEntry_Validate(t *testing.T) {
	cases := []struct {
		name  string
		entry SubjectEntry
		want  []EntryError
	}{
		{"valid", NewSubjectEntry("Math", "100", "85"), nil},
		{"empty row", NewSubjectEntry("", "", ""), []EntryError{
			{SubjectName, MsgSubjectNameRequired},
			{SubjectTotalMarks, MsgInvalidTotalMarks},
			{SubjectScore, MsgInvalidScore},
		}},
		{"blank name", NewSubjectEntry("   ", "100", "50"), []EntryError{
			{SubjectName, MsgSubjectNameRequired},
		}},
		{"zero total", NewSubjectEntry("Math", "0", "0"), []EntryError{
			{SubjectTotalMarks, MsgInvalidTotalMarks},
		}},
		{"non-numeric total", NewSubjectEntry("Math", "ten", "5"), []EntryError{
			{SubjectTotalMarks, MsgInvalidTotalMarks},
		}},
		{"negative score", NewSubjectEntry("Math", "100", "-1"), []EntryError{
			{SubjectScore, MsgInvalidScore},
		}},
		{"score exceeds total", NewSubjectEntry("Math", "100", "150"), []EntryError{
			{SubjectScore, MsgScoreExceedsTotal},
		}},
		{"score exceeds zero total", NewSubjectEntry("Math", "0", "5"), []EntryError{
			{SubjectTotalMarks, MsgInvalidTotalMarks},
			{SubjectScore, MsgScoreExceedsTotal},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.entry.Validate()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSubjectField(t *testing.T) {
	f, err := ParseSubjectField("totalmarks")
	require.NoError(t, err)
	assert.Equal(t, SubjectTotalMarks, f)

	_, err = ParseSubjectField("grade")
	assert.Error(t, err)
}

// fill sets every column of row i.
func fill(t *testing.T, c *SubjectCollection, i int, name, total, score string) {
	t.Helper()
	require.NoError(t, c.UpdateField(i, SubjectName, name))
	require.NoError(t, c.UpdateField(i, SubjectTotalMarks, total))
	require.NoError(t, c.UpdateField(i, SubjectScore, score))
}

func TestNewSubjectCollection_Bootstrap(t *testing.T) {
	c := NewSubjectCollection()
	require.Equal(t, 1, c.Len())
	rows := c.Rows()
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "-", rows[0].Percentage.String())

	err := c.Remove(0)
	assert.ErrorIs(t, err, ErrCannotRemoveLastRow)
	assert.Equal(t, 1, c.Len())
}

func TestUpdateField_RecomputesPercentage(t *testing.T) {
	c := NewSubjectCollection()
	fill(t, c, 0, "Math", "100", "85")

	e, err := c.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "85.0%", e.Percentage().String())
	assert.True(t, c.ValidateAll().Valid)

	require.NoError(t, c.UpdateField(0, SubjectScore, "150"))
	e, _ = c.Entry(0)
	assert.Equal(t, "Error", e.Percentage().String())

	report := c.ValidateAll()
	assert.False(t, report.Valid)
	assert.Equal(t, []EntryError{{SubjectScore, MsgScoreExceedsTotal}}, report.For(0))
}

func TestUpdateField_TotalChangeRecomputes(t *testing.T) {
	c := NewSubjectCollection()
	fill(t, c, 0, "Physics", "50", "40")
	require.NoError(t, c.UpdateField(0, SubjectTotalMarks, "80"))
	assert.Equal(t, "50.0%", c.Rows()[0].Percentage.String())
	require.NoError(t, c.UpdateField(0, SubjectTotalMarks, ""))
	assert.Equal(t, "-", c.Rows()[0].Percentage.String())
}

func TestUpdateField_BadInput(t *testing.T) {
	c := NewSubjectCollection()
	assert.ErrorIs(t, c.UpdateField(3, SubjectName, "x"), ErrRowOutOfRange)
	assert.ErrorIs(t, c.UpdateField(-1, SubjectName, "x"), ErrRowOutOfRange)
	assert.Error(t, c.UpdateField(0, SubjectField("grade"), "A"))
	assert.Equal(t, "", c.Rows()[0].Name)
}

func TestAppend_RejectsInvalidLastRow(t *testing.T) {
	c := NewSubjectCollection()
	err := c.Append()
	assert.ErrorIs(t, err, ErrLastRowInvalid)
	assert.Equal(t, 1, c.Len())

	fill(t, c, 0, "Math", "100", "150")
	assert.ErrorIs(t, c.Append(), ErrLastRowInvalid)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.UpdateField(0, SubjectScore, "90"))
	require.NoError(t, c.Append())
	assert.Equal(t, 2, c.Len())
	rows := c.Rows()
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, "", rows[1].Name)
	assert.Equal(t, "-", rows[1].Percentage.String())
}

func TestAppend_MaxRowsExceeded(t *testing.T) {
	c := NewSubjectCollection()
	for i := 0; i < MaxSubjects; i++ {
		fill(t, c, i, fmt.Sprintf("Subject%d", i), "100", "50")
		if i < MaxSubjects-1 {
			require.NoError(t, c.Append())
		}
	}
	require.Equal(t, MaxSubjects, c.Len())

	err := c.Append()
	assert.ErrorIs(t, err, ErrMaxRowsExceeded)
	assert.Equal(t, MaxSubjects, c.Len())

	// Max is checked before row validity.
	require.NoError(t, c.UpdateField(4, SubjectName, ""))
	assert.ErrorIs(t, c.Append(), ErrMaxRowsExceeded)
}

func TestRemove_RenumbersContiguously(t *testing.T) {
	c := NewSubjectCollection()
	names := []string{"A", "B", "C", "D"}
	for i, n := range names {
		fill(t, c, i, n, "10", "5")
		if i < len(names)-1 {
			require.NoError(t, c.Append())
		}
	}

	require.NoError(t, c.Remove(1))
	rows := c.Rows()
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Index)
	}
	assert.Equal(t, []string{"A", "C", "D"}, []string{rows[0].Name, rows[1].Name, rows[2].Name})

	assert.ErrorIs(t, c.Remove(7), ErrRowOutOfRange)
	assert.Equal(t, 3, c.Len())
}

func TestRemove_PropertyHoldsBounds(t *testing.T) {
	c := NewSubjectCollection()
	fill(t, c, 0, "A", "10", "5")
	require.NoError(t, c.Append())
	fill(t, c, 1, "B", "10", "5")

	require.NoError(t, c.Remove(0))
	assert.Equal(t, "B", c.Rows()[0].Name)
	err := c.Remove(0)
	assert.True(t, errors.Is(err, ErrCannotRemoveLastRow))
	assert.Equal(t, 1, c.Len())
}

func TestEntries_ReturnsCopies(t *testing.T) {
	c := NewSubjectCollection()
	fill(t, c, 0, "Math", "100", "85")
	entries := c.Entries()
	_ = entries[0].set(SubjectName, "Changed")
	assert.Equal(t, "Math", c.Rows()[0].Name)
}

func TestNewSubjectCollectionFrom(t *testing.T) {
	c, err := NewSubjectCollectionFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	entries := []SubjectEntry{
		NewSubjectEntry("Math", "100", "85"),
		NewSubjectEntry("Art", "50", "60"),
	}
	c, err = NewSubjectCollectionFrom(entries)
	require.NoError(t, err)
	rows := c.Rows()
	assert.Equal(t, "85.0%", rows[0].Percentage.String())
	assert.Equal(t, "Error", rows[1].Percentage.String())

	six := make([]SubjectEntry, 6)
	_, err = NewSubjectCollectionFrom(six)
	assert.ErrorIs(t, err, ErrMaxRowsExceeded)
}

func TestApplication_AveragePercentage(t *testing.T) {
	a := &Application{Subjects: []SubjectEntry{
		NewSubjectEntry("Math", "100", "80"),
		NewSubjectEntry("Art", "50", "45"),
		NewSubjectEntry("Music", "", ""),
	}}
	avg, ok := a.AveragePercentage()
	require.True(t, ok)
	assert.InDelta(t, 85.0, avg, 1e-9)

	_, ok = (&Application{}).AveragePercentage()
	assert.False(t, ok)
}

func TestParseStep(t *testing.T) {
	for _, s := range Steps {
		got, err := ParseStep(s.Key())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStep("review")
	assert.Error(t, err)
	assert.False(t, Step(7).Valid())
}
