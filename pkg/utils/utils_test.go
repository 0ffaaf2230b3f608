package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "28", want: []int{28}},
		{in: "28, 12 ,,35", want: []int{28, 12, 35}},
		{in: "28,abc", wantErr: true},
		{in: "0", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseIntList(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"1970s", "pre-1970s"}, SplitList("1970s, pre-1970s,"))
}

type sample struct {
	Name   string `validate:"required"`
	Decade string `validate:"omitempty,oneof=1970s 1980s"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "x", Decade: "1970s"}))

	errs := ValidateStruct(sample{Decade: "1850s"})
	require.Len(t, errs, 2)
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Must be one of: 1970s, 1980s", errs["Decade"])
	assert.Equal(t, "Decade: Must be one of: 1970s, 1980s; Name: This field is required", FormatValidationErrors(errs))
}

func TestResponseEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseConflict(rec, "already in library")

	assert.Equal(t, 409, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "already in library", body.Message)
	assert.Nil(t, body.Data)
}
