package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/covgate/internal/model"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		markers []string
		include []string
		exclude []string
		wantErr error
	}{
		{name: "defaults", markers: DefaultMarkers},
		{name: "valid globs", markers: DefaultMarkers, include: []string{"**/*.py"}, exclude: []string{"**/gen/**"}},
		{name: "no markers", markers: nil, wantErr: model.ErrNoMarkers},
		{name: "bad include", markers: DefaultMarkers, include: []string{"lib/[a"}, wantErr: model.ErrInvalidPattern},
		{name: "bad exclude", markers: DefaultMarkers, exclude: []string{"{a,b"}, wantErr: model.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.markers, tt.include, tt.exclude)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		path    string
		want    bool
	}{
		{name: "forward slash marker", path: "lib/a.py", want: true},
		{name: "nested forward slash marker", path: "/repo/src/lib/pkg/a.py", want: true},
		{name: "backslash marker", path: `C:\repo\lib\a.py`, want: true},
		{name: "test file", path: "test/c.py", want: false},
		{name: "vendored file", path: "vendor/pkg/a.py", want: false},
		{name: "marker is a substring match", path: "src/mylib/a.py", want: true},
		{name: "lib without separator", path: "lib", want: false},
		{name: "include matches", include: []string{"**/*.py"}, path: "lib/a.py", want: true},
		{name: "include misses", include: []string{"**/*.go"}, path: "lib/a.py", want: false},
		{name: "include by base name", include: []string{"a.*"}, path: "lib/deep/a.py", want: true},
		{name: "exclude wins", exclude: []string{"lib/generated/**"}, path: "lib/generated/x.py", want: false},
		{name: "exclude by base name", exclude: []string{"*_pb2.py"}, path: "lib/api_pb2.py", want: false},
		{name: "exclude normalizes backslashes", exclude: []string{"**/lib/gen/**"}, path: `C:\repo\lib\gen\x.py`, want: false},
		{name: "include needs marker too", include: []string{"**/*.py"}, path: "test/c.py", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(DefaultMarkers, tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(tt.path))
		})
	}
}

func TestApply(t *testing.T) {
	f, err := New(DefaultMarkers, nil, nil)
	require.NoError(t, err)

	records := []model.CoverageRecord{
		{Path: "lib/a.py", LinesFound: 10, LinesHit: 10},
		{Path: "test/c.py", LinesFound: 10, LinesHit: 1},
		{Path: `lib\b.py`, LinesFound: 10, LinesHit: 4},
	}

	got := f.Apply(records)
	assert.Equal(t, []model.CoverageRecord{records[0], records[2]}, got)
	assert.Empty(t, f.Apply(nil))
}
