package typesystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/minml/internal/typesystem"
)

func tv(name string) typesystem.TVar { return typesystem.TVar{Name: name} }

func classNames(p *typesystem.Partition, t typesystem.Type) []string {
	var names []string
	for _, member := range p.Class(t) {
		names = append(names, member.String())
	}
	return names
}

func TestUnify_SingleConstraint(t *testing.T) {
	p := typesystem.Unify([]typesystem.Constraint{
		{Left: tv("a"), Right: typesystem.TInt},
	})
	assert.True(t, p.Same(tv("a"), typesystem.TInt))
	assert.Equal(t, []string{"a", "int"}, classNames(p, typesystem.TInt))
}

func TestUnify_Chains(t *testing.T) {
	p := typesystem.Unify([]typesystem.Constraint{
		{Left: typesystem.TInt, Right: tv("b")},
		{Left: tv("a"), Right: typesystem.TInt},
	})
	assert.Equal(t, []string{"a", "b", "int"}, classNames(p, typesystem.TInt))

	// Transitive closure through minted variables.
	p = typesystem.Unify([]typesystem.Constraint{
		{Left: tv("a"), Right: tv("TV_1")},
		{Left: tv("b"), Right: tv("TV_2")},
		{Left: tv("TV_2"), Right: typesystem.TInt},
		{Left: tv("TV_1"), Right: typesystem.TInt},
	})
	assert.Equal(t, []string{"TV_1", "TV_2", "a", "b", "int"}, classNames(p, typesystem.TInt))
}

func TestUnify_UnrelatedClassesStayApart(t *testing.T) {
	p := typesystem.Unify([]typesystem.Constraint{
		{Left: typesystem.TBool, Right: tv("b")},
		{Left: tv("a"), Right: typesystem.TInt},
	})
	assert.Equal(t, []string{"b", "bool"}, classNames(p, typesystem.TBool))
	assert.Equal(t, []string{"a", "int"}, classNames(p, typesystem.TInt))
	assert.False(t, p.Same(tv("a"), tv("b")))
	assert.False(t, p.Same(typesystem.TInt, typesystem.TBool))
}

// Every constraint pair lands in one class.
func TestUnify_ConstraintsAreHonored(t *testing.T) {
	constraints := []typesystem.Constraint{
		{Left: tv("a"), Right: tv("TV_1")},
		{Left: tv("TV_1"), Right: tv("TV_2")},
		{Left: tv("TV_2"), Right: typesystem.TInt},
		{Left: typesystem.TBool, Right: tv("p")},
	}
	p := typesystem.Unify(constraints)
	for _, c := range constraints {
		assert.True(t, p.Same(c.Left, c.Right), "constraint %s", c)
	}
}

func TestUnify_ReflexiveConstraintIsDropped(t *testing.T) {
	p := typesystem.Unify([]typesystem.Constraint{
		{Left: typesystem.TInt, Right: typesystem.TInt},
	})
	assert.Empty(t, p.Conflicts())
	assert.Equal(t, []string{"int"}, classNames(p, typesystem.TInt))
}

func TestUnify_UnseenHandleIsSingleton(t *testing.T) {
	p := typesystem.Unify(nil)
	assert.Equal(t, []string{"z"}, classNames(p, tv("z")))
	assert.False(t, p.Same(tv("z"), typesystem.TInt))
	assert.True(t, p.Same(tv("z"), tv("z")))
}

// Classes carrying both base tags are allowed at this stage; Conflicts
// surfaces them for the caller to reject.
func TestUnify_ConflictingClassSurvives(t *testing.T) {
	p := typesystem.Unify([]typesystem.Constraint{
		{Left: typesystem.TBool, Right: tv("b")},
		{Left: tv("a"), Right: typesystem.TInt},
		{Left: tv("a"), Right: tv("b")},
	})
	require.Len(t, p.Class(tv("b")), 4)
	assert.Equal(t, []string{"a", "b", "bool", "int"}, classNames(p, tv("b")))

	conflicts := p.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Len(t, conflicts[0], 4)
}

func TestUnify_Sets(t *testing.T) {
	p := typesystem.Unify([]typesystem.Constraint{
		{Left: tv("a"), Right: typesystem.TInt},
		{Left: typesystem.TBool, Right: tv("p")},
	})
	sets := p.Sets()
	require.Len(t, sets, 4)
	assert.Equal(t, []string{"a", "int"}, sets["a"])
	assert.Equal(t, []string{"a", "int"}, sets["int"])
	assert.Equal(t, []string{"bool", "p"}, sets["p"])
	assert.Equal(t, []string{"bool", "p"}, sets["bool"])
}
