package yatabl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sufield/yatabl"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tok := yatabl.NewToken("Order 66")

	tests := []struct {
		name      string
		id        yatabl.Identifier
		anonymous bool
		token     bool
		str       string
		wantName  string
		hasName   bool
	}{
		{name: "anonymous", id: yatabl.Anonymous, anonymous: true, str: "<anonymous>"},
		{name: "zero value", id: yatabl.Identifier{}, anonymous: true, str: "<anonymous>"},
		{name: "named", id: yatabl.Name("Commander"), str: "Commander", wantName: "Commander", hasName: true},
		{name: "empty name", id: yatabl.Name(""), str: "", wantName: "", hasName: true},
		{name: "token", id: tok, token: true, str: "token(Order 66)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.anonymous, tt.id.IsAnonymous())
			assert.Equal(t, tt.token, tt.id.IsToken())
			assert.Equal(t, tt.str, tt.id.String())
			name, ok := tt.id.Name()
			assert.Equal(t, tt.hasName, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestIdentifier_Equality(t *testing.T) {
	t.Parallel()

	tok := yatabl.NewToken("x")

	assert.True(t, yatabl.Name("a") == yatabl.Name("a"))
	assert.False(t, yatabl.Name("a") == yatabl.Name("b"))
	assert.False(t, yatabl.Name("") == yatabl.Anonymous)
	same := tok
	assert.True(t, same == tok)
	assert.False(t, tok == yatabl.NewToken("x"))
	assert.False(t, tok == yatabl.Name("x"))
	assert.True(t, yatabl.Identifier{} == yatabl.Anonymous)
}
