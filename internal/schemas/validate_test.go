package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWizardReply_Valid(t *testing.T) {
	reply := `{
		"updates": {"p_name": "Ayşe Yılmaz"},
		"step_done": true,
		"assistant_comment": "Merhaba Ayşe, doğum yılın nedir?"
	}`

	assert.NoError(t, ValidateWizardReply(reply))
}

func TestValidateWizardReply_EmptyUpdates(t *testing.T) {
	reply := `{"updates": {}, "step_done": false, "assistant_comment": "Adını tekrar yazar mısın?"}`

	assert.NoError(t, ValidateWizardReply(reply))
}

func TestValidateWizardReply_MissingStepDone(t *testing.T) {
	reply := `{"updates": {}}`

	err := ValidateWizardReply(reply)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "step_done")
}

func TestValidateWizardReply_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"updates as array", `{"updates": [], "step_done": true}`},
		{"step_done as string", `{"updates": {}, "step_done": "yes"}`},
		{"assistant_comment as number", `{"updates": {}, "step_done": true, "assistant_comment": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWizardReply(tt.reply)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateWizardReply_UnknownUpdateFieldsAllowed(t *testing.T) {
	// Unknown keys pass schema validation; they are dropped later during coercion.
	reply := `{"updates": {"p_unknown": 1, "p_name": "Ali"}, "step_done": true}`

	assert.NoError(t, ValidateWizardReply(reply))
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(WizardReplySchema, `{"updates": `)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
