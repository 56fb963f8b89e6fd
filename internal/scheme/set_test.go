package scheme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/yatabl"
	"github.com/sufield/yatabl/internal/config"
)

func starWarsConfig() config.FileConfig {
	return config.FileConfig{
		Version: 1,
		Schemes: []config.SchemeSection{
			cloneTrooperSection(),
			{
				Name: "Arc Trooper",
				Fields: []config.FieldSection{
					{Name: "id", Kind: config.KindNumber, Required: true},
					{Name: "arc", Kind: config.KindBool, Required: true},
				},
			},
			{
				Name: "Commander",
				Fields: []config.FieldSection{
					{Name: "rank", Kind: config.KindString, Required: true, OneOf: []any{"Commander"}},
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	set, err := Build(starWarsConfig())
	require.NoError(t, err)

	names := make([]string, 0, len(set.Schemes()))
	for _, s := range set.Schemes() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Clone Trooper", "Arc Trooper", "Commander"}, names)

	s, ok := set.Lookup("Arc Trooper")
	require.True(t, ok)
	assert.Equal(t, yatabl.Name("Arc Trooper"), s.ID)

	_, ok = set.Lookup("Jedi")
	assert.False(t, ok)
}

func TestBuild_InvalidConfig(t *testing.T) {
	_, err := Build(config.FileConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scheme config")
}

func TestSet_Apply(t *testing.T) {
	set, err := Build(starWarsConfig())
	require.NoError(t, err)

	tests := []struct {
		name       string
		record     yatabl.Record
		wantTag    yatabl.Identifier
		wantTagged bool
		wantPassed []string
		wantFailed []string
	}{
		{
			name:       "last passing scheme wins",
			record:     yatabl.Record{"id": 7567, "rank": "Commander", "arc": true},
			wantTag:    yatabl.Name("Commander"),
			wantTagged: true,
			wantPassed: []string{"Clone Trooper", "Arc Trooper", "Commander"},
		},
		{
			name:       "middle scheme is the last to pass",
			record:     yatabl.Record{"id": 5555, "rank": "Trooper", "arc": true},
			wantTag:    yatabl.Name("Arc Trooper"),
			wantTagged: true,
			wantPassed: []string{"Clone Trooper", "Arc Trooper"},
			wantFailed: []string{"Commander"},
		},
		{
			name:       "nothing passes",
			record:     yatabl.Record{"name": "Ahsoka"},
			wantFailed: []string{"Clone Trooper", "Arc Trooper", "Commander"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.record
			res := set.Apply(&r)

			assert.Equal(t, tt.wantTagged, res.Tagged)
			if tt.wantTagged {
				assert.Equal(t, tt.wantTag, res.Tag)
			}
			if diff := cmp.Diff(tt.wantPassed, res.Passed); diff != "" {
				t.Errorf("passed mismatch (-want +got):\n%s", diff)
			}

			var failed []string
			for _, f := range res.Failed {
				failed = append(failed, f.Scheme)
				var verr *ValidationError
				assert.ErrorAs(t, f.Err, &verr)
			}
			if diff := cmp.Diff(tt.wantFailed, failed); diff != "" {
				t.Errorf("failed mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSet_ApplyKeepsPriorTag(t *testing.T) {
	set, err := Build(starWarsConfig())
	require.NoError(t, err)

	r := yatabl.TagAs(yatabl.Name("Jedi"), &yatabl.Record{"name": "Ahsoka"})
	res := set.Apply(r)

	assert.Empty(t, res.Passed)
	assert.True(t, res.Tagged)
	assert.Equal(t, yatabl.Name("Jedi"), res.Tag)
}

func TestSet_ApplyNil(t *testing.T) {
	set, err := Build(starWarsConfig())
	require.NoError(t, err)

	res := set.Apply(nil)
	assert.False(t, res.Tagged)
	require.Len(t, res.Failed, 3)
	for _, f := range res.Failed {
		assert.ErrorIs(t, f.Err, ErrNilRecord)
	}
}

func TestSet_Matches(t *testing.T) {
	set, err := Build(starWarsConfig())
	require.NoError(t, err)

	r := &yatabl.Record{"id": 5555, "rank": "Trooper", "arc": true}
	set.Apply(r)

	assert.True(t, set.Matches(r, "Arc Trooper"))
	assert.True(t, set.Matches(r, "Commander", "Arc Trooper"))
	assert.False(t, set.Matches(r, "Clone Trooper"), "re-tagging replaced the earlier tag")
	assert.False(t, set.Matches(r, "Jedi"))
	assert.False(t, set.Matches(r))
	assert.False(t, set.Matches(&yatabl.Record{"id": 5555, "rank": "Trooper", "arc": true}, "Arc Trooper"))
}
