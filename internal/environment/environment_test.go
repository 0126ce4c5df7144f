package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rulox/internal/environment"
)

func TestDefineAndGet(t *testing.T) {
	env := environment.New(nil)
	env.Define("x", environment.Number{V: 42})

	v, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, environment.Number{V: 42}, v)
}

func TestGetWalksParentChain(t *testing.T) {
	parent := environment.New(nil)
	parent.Define("x", environment.Number{V: 1})
	child := environment.New(parent)

	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, environment.Number{V: 1}, v)
}

func TestGetUnboundNameIsUndefinedVariableError(t *testing.T) {
	env := environment.New(nil)
	_, err := env.Get("missing")
	assert.Error(t, err)
	var undef *environment.UndefinedVariableError
	assert.ErrorAs(t, err, &undef)
}

func TestAssignWritesToNearestBindingScope(t *testing.T) {
	parent := environment.New(nil)
	parent.Define("x", environment.Number{V: 1})
	child := environment.New(parent)

	assert.NoError(t, child.Assign("x", environment.Number{V: 2}))

	v, _ := parent.Get("x")
	assert.Equal(t, environment.Number{V: 2}, v, "assignment must land in the declaring scope, not shadow locally")
}

func TestAssignUnboundNameErrors(t *testing.T) {
	env := environment.New(nil)
	err := env.Assign("missing", environment.Nil{})
	assert.Error(t, err)
}

func TestGetAtAndAssignAtWalkExactDistance(t *testing.T) {
	grandparent := environment.New(nil)
	grandparent.Define("x", environment.Number{V: 1})
	parent := environment.New(grandparent)
	child := environment.New(parent)

	v, err := child.GetAt(2, "x")
	assert.NoError(t, err)
	assert.Equal(t, environment.Number{V: 1}, v)

	child.AssignAt(2, "x", environment.Number{V: 99})
	v2, _ := grandparent.Get("x")
	assert.Equal(t, environment.Number{V: 99}, v2)
}

func TestNumberStringFormattingDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "7", environment.Number{V: 7}.String())
	assert.Equal(t, "3.14", environment.Number{V: 3.14}.String())
}
