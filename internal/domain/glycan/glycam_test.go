package glycan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimReducingEnd(t *testing.T) {
	tests := []struct {
		name   string
		glycam string
		want   string
	}{
		{
			name:   "beta reducing end",
			glycam: "DManpa1-3DManpb1-4DGlcpNAcb1-OH",
			want:   "DManpa1-3DManpb1-4DGlcpNAc",
		},
		{
			name:   "alpha reducing end",
			glycam: "DGalpNAca1-OH",
			want:   "DGalpNAc",
		},
		{
			name:   "no reducing end marker",
			glycam: "DManpa1-3DManpb1",
			want:   "DManpa1-3DManpb1",
		},
		{
			name:   "OH without anomer prefix stays",
			glycam: "something-OH",
			want:   "something-OH",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimReducingEnd(tt.glycam))
		})
	}
}

func TestGLYCAMToIUPAC(t *testing.T) {
	tests := []struct {
		name   string
		glycam string
		want   string
	}{
		{
			name:   "paucimannose core",
			glycam: "DManpa1-3DManpa1-6DManpb1-4DGlcpNAcb1-4DGlcpNAcb1-OH",
			want:   "Man(a1-3)Man(a1-6)Man(b1-4)GlcNAc(b1-4)GlcNAc",
		},
		{
			name:   "branch brackets survive",
			glycam: "DGalpb1-4[LFucpa1-3]DGlcpNAcb1-OH",
			want:   "Gal(b1-4)[Fuc(a1-3)]GlcNAc",
		},
		{
			name:   "sialic acid keeps numbered substituent",
			glycam: "DNeup5Aca2-6DGalpb1-OH",
			want:   "Neu5Ac(a2-6)Gal",
		},
		{
			name:   "non-default stereochemistry kept as prefix",
			glycam: "LGalpa1-3DGalpb1-OH",
			want:   "L-Gal(a1-3)Gal",
		},
		{
			name:   "sulfation modifier rewrite",
			glycam: "DGalp[6S]b1-4DGlcpNAcb1-OH",
			want:   "Gal6S(b1-4)GlcNAc",
		},
		{
			name:   "single residue",
			glycam: "DGlcpNAcb1-OH",
			want:   "GlcNAc",
		},
		{
			name:   "fucose default is L",
			glycam: "LFucpa1-2DGalpb1-OH",
			want:   "Fuc(a1-2)Gal",
		},
		{
			name:   "diacetimido special case",
			glycam: "DGalpb1-4DGalpa1-3[2,4-diacetimido-2,4,6-trideoxyhexose]",
			want:   "Gal(b1-4)Gal(a1-3)2,4-diacetimido-2,4,6-trideoxyhexose",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GLYCAMToIUPAC(tt.glycam))
		})
	}
}

func TestModifierRewritesIdempotent(t *testing.T) {
	apply := func(s string) string {
		for _, r := range modifierRewrites {
			s = strings.ReplaceAll(s, r.from, r.to)
		}
		return s
	}
	in := "Gal[3S,6S](b1-4)Glc[2Me]NAc[6PC]"
	once := apply(in)
	twice := apply(once)
	assert.Equal(t, once, twice)
}

func TestMatchSugarCodePrefersLongest(t *testing.T) {
	code, _, def, ok := matchSugarCode("Neu5Aca2")
	assert.True(t, ok)
	assert.Equal(t, "Neu5Ac", code)
	assert.Equal(t, "D", def)

	code, _, def, ok = matchSugarCode("3]DGlcpNAc")
	assert.True(t, ok)
	// the ring marker separates Glc from NAc, so only Glc can match here
	assert.Equal(t, "Glc", code)
	assert.Equal(t, "D", def)

	_, _, _, ok = matchSugarCode("nonsense")
	assert.False(t, ok)
}
