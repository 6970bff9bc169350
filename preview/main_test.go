package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", displayAddr(":8080"))
	assert.Equal(t, "127.0.0.1:8080", displayAddr("0.0.0.0:8080"))
	assert.Equal(t, "127.0.0.1:9000", displayAddr("[::]:9000"))
	assert.Equal(t, "192.168.1.4:80", displayAddr("192.168.1.4:80"))
	assert.Equal(t, "not-an-addr", displayAddr("not-an-addr"))
}
