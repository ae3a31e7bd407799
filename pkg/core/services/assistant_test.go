package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDescribeActions_SingleMatch(t *testing.T) {
	reply := DescribeActions(zap.NewNop(), "how do I approve the pending selection")

	require.Len(t, reply.Actions, 1)
	assert.Equal(t, "approve", reply.Actions[0].Name)
	assert.Contains(t, reply.Answer, "approve")
}

func TestDescribeActions_MultipleMatches(t *testing.T) {
	reply := DescribeActions(zap.NewNop(), "can I drop someone and then promote from the waitlist?")

	require.Len(t, reply.Actions, 2)
	assert.Equal(t, "promote", reply.Actions[0].Name)
	assert.Equal(t, "drop", reply.Actions[1].Name)
}

func TestDescribeActions_UnknownQueryReturnsCatalogue(t *testing.T) {
	reply := DescribeActions(zap.NewNop(), "what is the weather on the coast")

	assert.Len(t, reply.Actions, len(assistantActions))
	assert.Contains(t, reply.Answer, "describe")
}

func TestDescribeActions_CaseInsensitive(t *testing.T) {
	reply := DescribeActions(zap.NewNop(), "READMIT Pat please")

	require.Len(t, reply.Actions, 1)
	assert.Equal(t, "readmit", reply.Actions[0].Name)
}
