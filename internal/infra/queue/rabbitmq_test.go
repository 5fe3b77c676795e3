package mq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestTableCarrier(t *testing.T) {
	c := tableCarrier{table: amqp.Table{}}
	c.Set("traceparent", "00-abc-def-01")
	c.table["retries"] = int32(2)

	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
	assert.Equal(t, "2", c.Get("retries"))
	assert.Equal(t, "", c.Get("missing"))
	assert.ElementsMatch(t, []string{"traceparent", "retries"}, c.Keys())
}

func TestHeadersOf_NilHeaders(t *testing.T) {
	h := headersOf(amqp.Delivery{})
	assert.NotNil(t, h)
	h["k"] = "v"
}
