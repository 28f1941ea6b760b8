// SPDX-License-Identifier: MIT
// Package dynamic_test contains test helpers.
//
// Purpose:
//   - Small fixtures that fail the test immediately instead of returning errors.
//   - Loader for the YAML arithmetic table in testdata/.

package dynamic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tmatrix/dynamic"
)

// mustMatrix allocates an n×n zero matrix or fails the test.
func mustMatrix(tb testing.TB, n int) *dynamic.Matrix[int] {
	tb.Helper()
	m, err := dynamic.NewMatrix[int](n)
	require.NoError(tb, err)

	return m
}

// mustMatrixFrom builds a matrix from a square literal or fails the test.
func mustMatrixFrom(tb testing.TB, rows [][]int) *dynamic.Matrix[int] {
	tb.Helper()
	m, err := dynamic.MatrixFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustVector allocates an n-element zero vector or fails the test.
func mustVector(tb testing.TB, n int) *dynamic.Vector[int] {
	tb.Helper()
	v, err := dynamic.NewVector[int](n)
	require.NoError(tb, err)

	return v
}

// mustVectorFrom builds a vector from a literal or fails the test.
func mustVectorFrom(tb testing.TB, vals ...int) *dynamic.Vector[int] {
	tb.Helper()
	v, err := dynamic.VectorFromSlice(vals)
	require.NoError(tb, err)

	return v
}

// mustSet writes m[i][j] = x or fails the test.
func mustSet(tb testing.TB, m *dynamic.Matrix[int], i, j, x int) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, x))
}

// mustAt reads m[i][j] or fails the test.
func mustAt(tb testing.TB, m *dynamic.Matrix[int], i, j int) int {
	tb.Helper()
	x, err := m.At(i, j)
	require.NoError(tb, err)

	return x
}

// arithmeticCase is one row of testdata/arithmetic.yaml.
type arithmeticCase struct {
	Name string  `yaml:"name"`
	A    [][]int `yaml:"a"`
	B    [][]int `yaml:"b"`
	Sum  [][]int `yaml:"sum"`
	Diff [][]int `yaml:"diff"`
	Err  string  `yaml:"err"`
}

// loadArithmeticCases decodes testdata/arithmetic.yaml.
func loadArithmeticCases(tb testing.TB) []arithmeticCase {
	tb.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(tb, err)

	var doc struct {
		Cases []arithmeticCase `yaml:"cases"`
	}
	require.NoError(tb, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(tb, doc.Cases)

	return doc.Cases
}
