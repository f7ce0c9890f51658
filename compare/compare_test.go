package compare

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/vkernel/kernel"
	"github.com/ajroetker/vkernel/report"
)

func mustParse(t *testing.T, s string) Record {
	t.Helper()
	rec, err := Parse(strings.NewReader(s))
	require.NoError(t, err)
	return rec
}

func TestParse(t *testing.T) {
	rec := mustParse(t, "header line\nVLENGTH=8\n  SUM = 1.5  \nNAME=cilk=plus\nSUM=2\nBAD=inf\n")

	assert.Equal(t, []string{"VLENGTH", "SUM", "NAME", "BAD"}, rec.Keys)
	assert.Equal(t, Value{Text: "8", Number: 8, IsNumber: true}, rec.Values["VLENGTH"])
	assert.Equal(t, 2.0, rec.Values["SUM"].Number, "last value wins")
	assert.Equal(t, Value{Text: "cilk=plus"}, rec.Values["NAME"])
	assert.True(t, math.IsInf(rec.Values["BAD"].Number, 1))
}

func TestParseEmptyKey(t *testing.T) {
	_, err := Parse(strings.NewReader("A=1\n=2\n"))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCompareIdentical(t *testing.T) {
	x, f := kernel.Input()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, kernel.Default().Compute(x, f), nil))
	a := mustParse(t, buf.String())

	for _, v := range kernel.Variants() {
		buf.Reset()
		require.NoError(t, report.Write(&buf, v.Compute(x, f), nil))
		b := mustParse(t, buf.String())

		out := Compare(a, b, DefaultTolerance)
		assert.Truef(t, out.Passed(), "%s: failures %v", v.Name, out.Failures())
		assert.Len(t, out.Entries, 4+2*kernel.VLength)
	}
}

func TestCompareVerdicts(t *testing.T) {
	a := mustParse(t, "VLENGTH=8\nSUM=1.0\nSUM2=2.0\nMODE=simd\nGONE=1\nNAN=nan\n")
	b := mustParse(t, "VLENGTH=8\nSUM=1.0000000000001\nSUM2=2.1\nMODE=loop\nNAN=nan\nEXTRA=3\n")

	out := Compare(a, b, DefaultTolerance)
	got := make(map[string]Status, len(out.Entries))
	for _, e := range out.Entries {
		got[e.Key] = e.Status
	}
	want := map[string]Status{
		"VLENGTH": StatusOK,
		"SUM":     StatusOK,
		"SUM2":    StatusMismatch,
		"MODE":    StatusMismatch,
		"GONE":    StatusMissing,
		"NAN":     StatusOK,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statuses (-want +got):\n%s", diff)
	}
	assert.False(t, out.Passed())
	assert.Equal(t, 3, out.NumFailed())
	assert.Len(t, out.Failures(), 3)
}

func TestCompareNonFinite(t *testing.T) {
	a := mustParse(t, "A=nan\nB=inf\nC=inf\n")
	b := mustParse(t, "A=1\nB=inf\nC=-inf\n")
	out := Compare(a, b, DefaultTolerance)
	assert.Equal(t, StatusMismatch, out.Entries[0].Status)
	assert.Equal(t, StatusOK, out.Entries[1].Status)
	assert.Equal(t, StatusMismatch, out.Entries[2].Status)
}

func TestWrite(t *testing.T) {
	a := mustParse(t, "VLENGTH=8\nSUM=1.5\nSUM2=2\nMODE=simd\nGONE=1\n")
	b := mustParse(t, "VLENGTH=8\nSUM=1.5\nSUM2=2.5\nMODE=loop\n")

	var buf bytes.Buffer
	require.NoError(t, Compare(a, b, DefaultTolerance).Write(&buf, "cilk", "openmp"))
	want := `OK: VLENGTH diff=0.00e+00
OK: SUM diff=0.00e+00
MISMATCH: SUM2 cilk=2 openmp=2.5 diff=5.00e-01 rel=2.50e-01
MISMATCH: MODE cilk=simd openmp=loop
MISSING: GONE not in openmp output

FAILURE: Some values differ beyond tolerance
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("verdict mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSuccess(t *testing.T) {
	a := mustParse(t, "MODE=simd\n")
	var buf bytes.Buffer
	require.NoError(t, Compare(a, a, DefaultTolerance).Write(&buf, "a", "b"))
	assert.Equal(t, "OK: MODE = simd\n\nSUCCESS: All values match within tolerance\n", buf.String())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("VLENGTH=8\n"), 0o644))
	rec, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"VLENGTH"}, rec.Keys)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
