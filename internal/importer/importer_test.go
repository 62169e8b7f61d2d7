package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
personal:
  fullName: Ada Lovelace
  age: 20
  parentName: Anne Byron
  occupation: Teacher
  address: 12 Mill Road, Leeds
  relationship: Mother
subjects:
  - {name: Math, totalMarks: 100, score: 85}
  - {name: Art, totalMarks: 50, score: 40.5}
income:
  annualIncome: 250000
  requisitionAmount: "5000"
  natureRequisition: Tuition fees
  fundAmount: 4000
`

const validJSON = `{
  "personal": {"fullName": "Ada Lovelace", "age": 20},
  "subjects": [{"name": "Math", "totalMarks": 100, "score": 85}],
  "income": {"fundAmount": 4000.50}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocument_YAML(t *testing.T) {
	doc, err := LoadDocument(writeFile(t, "answers.yaml", validYAML))
	require.NoError(t, err)
	assert.Empty(t, ValidateDocument(doc))

	app := Convert(doc)
	assert.Equal(t, "Ada Lovelace", app.FullName)
	assert.Equal(t, "20", app.Age)
	assert.Equal(t, "5000", app.RequisitionAmount)
	assert.Equal(t, "250000", app.AnnualIncome)
	require.Len(t, app.Subjects, 2)
	assert.Equal(t, "40.5", app.Subjects[1].Score())
	assert.Equal(t, "81.0%", app.Subjects[1].Percentage().String())
}

func TestLoadDocument_JSONKeepsNumberText(t *testing.T) {
	doc, err := LoadDocument(writeFile(t, "answers.json", validJSON))
	require.NoError(t, err)
	assert.Empty(t, ValidateDocument(doc))

	app := Convert(doc)
	assert.Equal(t, "20", app.Age)
	assert.Equal(t, "4000.50", app.FundAmount, "json numbers keep their literal text")
	assert.Equal(t, "", app.Occupation)
}

func TestLoadDocument_ParseError(t *testing.T) {
	_, err := LoadDocument(writeFile(t, "answers.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing answers file")

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_EmptyDocument(t *testing.T) {
	raw, err := Decode([]byte("  \n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, raw)

	app := Convert(&Document{Raw: raw})
	assert.Empty(t, app.Subjects)
}

func TestValidateDocument_UnknownKeysSuggest(t *testing.T) {
	raw, err := Decode([]byte(`
personl: {}
personal:
  fullname: Ada
  favouriteColour: blue
subjects:
  - {name: Math, totalMark: 100}
`), FormatYAML)
	require.NoError(t, err)

	errs := ValidateDocument(&Document{Raw: raw})
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	assert.Equal(t, []string{
		`personl: unknown key (did you mean "personal"?)`,
		`personal.favouriteColour: unknown key`,
		`personal.fullname: unknown key (did you mean "fullName"?)`,
		`subjects[0].totalMark: unknown key (did you mean "totalMarks"?)`,
	}, msgs)
}

func TestValidateDocument_ShapeErrors(t *testing.T) {
	raw, err := Decode([]byte(`
personal: [a, b]
income:
  fundAmount: true
subjects:
  - {name: A}
  - {name: B}
  - {name: C}
  - {name: D}
  - {name: E}
  - {name: F}
  - plain
`), FormatYAML)
	require.NoError(t, err)

	errs := ValidateDocument(&Document{Raw: raw})
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "personal: expected a mapping, got list")
	assert.Contains(t, errs[1].Error(), "income.fundAmount: expected a string or number, got boolean")
	assert.ErrorIs(t, errs[2], domain.ErrMaxRowsExceeded)
	assert.Contains(t, errs[3].Error(), "subjects[6]: expected a mapping")
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, formatFor("a.yml"))
	assert.Equal(t, FormatYAML, formatFor("a.YAML"))
	assert.Equal(t, FormatJSON, formatFor("a.json"))
	assert.Equal(t, FormatJSON, formatFor("answers"))
}
