package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/minml/internal/asm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "programs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleProgram() *asm.Program {
	prog := asm.NewProgram()
	prog.Append(asm.Addi{Rd: "v1", Rs: "x0", Imm: 2})
	prog.Append(asm.Addi{Rd: "v2", Rs: "x0", Imm: 3})
	prog.Append(asm.Add{Rd: "v3", Rs: "v1", Rt: "v2"})
	return prog
}

func TestStore_SaveAndLookup(t *testing.T) {
	s := openTestStore(t)
	prog := sampleProgram()

	require.NoError(t, s.Save(prog, "2 + 3", "v3"))

	rec, err := s.Lookup("2 + 3")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, prog.ID.String(), rec.ID)
	assert.Equal(t, "2 + 3", rec.Source)
	assert.Equal(t, prog.String(), rec.Listing)
	assert.Equal(t, "v3", rec.ResultRegister)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestStore_LookupMissing(t *testing.T) {
	s := openTestStore(t)
	rec, err := s.Lookup("never compiled")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_SaveIsIdempotentPerID(t *testing.T) {
	s := openTestStore(t)
	prog := sampleProgram()

	require.NoError(t, s.Save(prog, "2 + 3", "v3"))
	require.NoError(t, s.Save(prog, "2 + 3", "v3"))

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStore_List(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(sampleProgram(), "2 + 3", "v3"))
	require.NoError(t, s.Save(sampleProgram(), "4 * 5", "v3"))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	sources := []string{records[0].Source, records[1].Source}
	assert.ElementsMatch(t, []string{"2 + 3", "4 * 5"}, sources)
}
