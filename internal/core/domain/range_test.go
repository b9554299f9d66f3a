package domain_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.pakt.dev/pakt/internal/core/domain"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		inside  []string
		outside []string
	}{
		{
			name:    "closed open interval",
			input:   "[1.0.0,2.0.0)",
			inside:  []string{"1.0.0", "1.5.3", "1.999.0"},
			outside: []string{"0.9.9", "2.0.0", "3.0.0"},
		},
		{
			name:    "unbounded minimum",
			input:   "(,1.5.0]",
			inside:  []string{"0.0.1", "1.5.0"},
			outside: []string{"1.5.1", "2.0.0"},
		},
		{
			name:    "exact pin",
			input:   "[1.0.0]",
			inside:  []string{"1.0.0"},
			outside: []string{"0.9.9", "1.0.1"},
		},
		{
			name:    "bare version is inclusive minimum",
			input:   "1.0.0",
			inside:  []string{"1.0.0", "5.0.0"},
			outside: []string{"0.9.9"},
		},
		{
			name:    "exclusive minimum",
			input:   "(1.0.0,)",
			inside:  []string{"1.0.1", "2.0.0"},
			outside: []string{"1.0.0", "0.5.0"},
		},
		{
			name:   "empty string is unbounded",
			input:  "",
			inside: []string{"0.0.1", "99.0.0"},
		},
		{
			name:    "inverted bounds",
			input:   "[2.0.0,1.0.0]",
			wantErr: true,
		},
		{
			name:    "missing closing bracket",
			input:   "[1.0.0,2.0.0",
			wantErr: true,
		},
		{
			name:    "exact pin must be inclusive",
			input:   "(1.0.0)",
			wantErr: true,
		},
		{
			name:    "both bounds empty",
			input:   "(,)",
			wantErr: true,
		},
		{
			name:    "garbage version",
			input:   "[not.a.version,2.0.0)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.ParseRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidRange.Error())
				return
			}
			require.NoError(t, err)

			for _, v := range tt.inside {
				assert.True(t, r.Satisfies(semver.MustParse(v), false), "expected %s inside %s", v, tt.input)
			}
			for _, v := range tt.outside {
				assert.False(t, r.Satisfies(semver.MustParse(v), false), "expected %s outside %s", v, tt.input)
			}
		})
	}
}

func TestVersionRange_Prerelease(t *testing.T) {
	r := domain.MustParseRange("[1.0.0,2.0.0)")
	beta := semver.MustParse("1.5.0-beta.1")

	assert.False(t, r.Satisfies(beta, false))
	assert.True(t, r.Satisfies(beta, true))
}

func TestVersionRange_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[1.0.0,2.0.0)", "[1.0.0,2.0.0)"},
		{"[1.0.0]", "[1.0.0]"},
		{"1.0.0", "[1.0.0,)"},
		{"(,1.5.0]", "(,1.5.0]"},
		{"", "(,)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.MustParseRange(tt.input).String())
	}
}

func TestVersionRange_IsExact(t *testing.T) {
	assert.True(t, domain.MustParseRange("[1.2.3]").IsExact())
	assert.False(t, domain.MustParseRange("[1.2.3,)").IsExact())
	assert.False(t, domain.AnyVersion.IsExact())
}
