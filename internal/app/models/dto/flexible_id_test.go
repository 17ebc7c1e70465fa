package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "string value", payload: `{"studentId":"7"}`, want: "7"},
		{name: "number value", payload: `{"studentId":7}`, want: "7"},
		{name: "padded string", payload: `{"studentId":" 7 "}`, want: "7"},
		{name: "null value", payload: `{"studentId":null}`, want: ""},
		{name: "object value", payload: `{"studentId":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SubmitRequest
			err := json.Unmarshal([]byte(tt.payload), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.StudentID.String())
		})
	}
}

func TestFlexibleID_Int64(t *testing.T) {
	id, err := FlexibleID("41").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)

	_, err = FlexibleID("abc").Int64()
	assert.Error(t, err)

	_, err = FlexibleID("").Int64()
	assert.Error(t, err)
}
