package commands

import (
	"testing"

	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	"github.com/stretchr/testify/assert"
)

func TestParsePid(t *testing.T) {
	tests := []struct {
		raw         string
		expected    int32
		expectedErr bool
	}{
		{raw: "4242", expected: 4242},
		{raw: "0", expectedErr: true},
		{raw: "-7", expectedErr: true},
		{raw: "abc", expectedErr: true},
		{raw: "99999999999", expectedErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parsePid(tt.raw)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDescribeOutcome(t *testing.T) {
	assert.Equal(t, "Sent termination signal to 4242", describeOutcome(4242, types.Terminated))
	assert.Equal(t, "No process 4242", describeOutcome(4242, types.NotFound))
	assert.Equal(t, "Not permitted to terminate 1", describeOutcome(1, types.AccessDenied))
}
