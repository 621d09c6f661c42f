package glycan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

func TestSplitWURCS(t *testing.T) {
	t.Run("tetrasaccharide", func(t *testing.T) {
		parts, err := SplitWURCS("WURCS=2.0/3,4,3/[a2122h-1b_1-5_2*NCC/3=O][a1122h-1b_1-5][a1122h-1a_1-5]/1-1-2-3/a4-b1_b4-c1_c3-d1")
		require.NoError(t, err)

		assert.Equal(t, 3, parts.UniqueResCount)
		assert.Equal(t, 4, parts.ResCount)
		assert.Equal(t, 3, parts.LinCount)
		assert.Equal(t, []string{"a2122h-1b_1-5_2*NCC/3=O", "a1122h-1b_1-5", "a1122h-1a_1-5"}, parts.UniqueResList)
		assert.Equal(t, []int{1, 1, 2, 3}, parts.ResSequence)
		assert.Equal(t, []string{"a4-b1", "b4-c1", "c3-d1"}, parts.LinList)
	})

	t.Run("single residue has no linkages", func(t *testing.T) {
		parts, err := SplitWURCS("WURCS=2.0/1,1,0/[a2122h-1x_1-5_2*NCC/3=O]/1/")
		require.NoError(t, err)

		assert.Equal(t, 1, parts.UniqueResCount)
		assert.Equal(t, []int{1}, parts.ResSequence)
		assert.Empty(t, parts.LinList)
	})

	t.Run("residue descriptor with slashes stays intact", func(t *testing.T) {
		parts, err := SplitWURCS("WURCS=2.0/1,1,0/[a2112h-1b_1-5_2*NCC/3=O_4*OSO/3=O/3=O]/1/")
		require.NoError(t, err)
		assert.Equal(t, "a2112h-1b_1-5_2*NCC/3=O_4*OSO/3=O/3=O", parts.UniqueResList[0])
	})

	t.Run("header and list lengths must agree", func(t *testing.T) {
		_, err := SplitWURCS("WURCS=2.0/2,3,2/[a2122h-1b_1-5][a1122h-1a_1-5]/1-2/a4-b1_b4-c1")
		require.Error(t, err)
		assert.True(t, apperrors.IsParseError(err))
		assert.Contains(t, err.Error(), "residue sequence")
	})

	malformed := []struct {
		name  string
		wurcs string
	}{
		{"missing prefix", "2.0/1,1,0/[a2122h-1b_1-5]/1/"},
		{"missing count header", "WURCS=2.0"},
		{"two count fields", "WURCS=2.0/1,1/[a2122h-1b_1-5]/1/"},
		{"non-integer count", "WURCS=2.0/x,1,0/[a2122h-1b_1-5]/1/"},
		{"missing section", "WURCS=2.0/1,1,0/[a2122h-1b_1-5]/1"},
		{"extra section", "WURCS=2.0/1,1,0/[a2122h-1b_1-5]/1//"},
		{"fewer residues than declared", "WURCS=2.0/2,2,1/[a2122h-1b_1-5]/1-2/a4-b1"},
		{"unbalanced bracket", "WURCS=2.0/1,1,0/[a2122h-1b_1-5/1/"},
		{"non-integer sequence entry", "WURCS=2.0/1,2,1/[a2122h-1b_1-5]/1-q/a4-b1"},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := SplitWURCS(tt.wurcs)
			require.Error(t, err)
			assert.Nil(t, parts)
			assert.True(t, apperrors.IsParseError(err))
		})
	}
}

func TestSplitWURCSRoundTrip(t *testing.T) {
	// reconstruct the source string from the parts
	w := "WURCS=2.0/3,5,4/[a2122h-1b_1-5_2*NCC/3=O][a1122h-1b_1-5][a1122h-1a_1-5]/1-1-2-3-3/a4-b1_b4-c1_c3-d1_c6-e1"
	parts, err := SplitWURCS(w)
	require.NoError(t, err)

	var sb strings.Builder
	sb.WriteString("WURCS=2.0/3,5,4/")
	for _, r := range parts.UniqueResList {
		sb.WriteString("[" + r + "]")
	}
	sb.WriteString("/1-1-2-3-3/")
	sb.WriteString(strings.Join(parts.LinList, "_"))
	assert.Equal(t, w, sb.String())

	assert.Len(t, parts.UniqueResList, parts.UniqueResCount)
	assert.Len(t, parts.ResSequence, parts.ResCount)
	assert.Len(t, parts.LinList, parts.LinCount)
}

func TestAnomerVariants(t *testing.T) {
	alpha, beta := AnomerVariants("WURCS=2.0/1,1,0/[a2122h-1x_1-5]/1/")

	assert.Equal(t, "WURCS=2.0/1,1,0/[a2122h-1a_1-5]/1/", alpha)
	assert.Equal(t, "WURCS=2.0/1,1,0/[a2122h-1b_1-5]/1/", beta)
	assert.NotContains(t, alpha, "x")
	assert.NotContains(t, beta, "x")

	// strings without the placeholder pass through unchanged
	w := "WURCS=2.0/1,1,0/[a2122h-1b_1-5]/1/"
	alpha, beta = AnomerVariants(w)
	assert.Equal(t, w, alpha)
	assert.Equal(t, w, beta)
}
