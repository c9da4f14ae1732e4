package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

func TestPrintAccounts(t *testing.T) {
	accounts := []domain.AdAccount{
		{ID: "123", Name: "Acme", Status: domain.AdAccountStatusActive, Type: "BUSINESS", Currency: "USD"},
		{ID: "456", Name: "Antiga", Status: domain.AdAccountStatusCanceled, Type: "BUSINESS", Currency: "BRL"},
	}

	var all bytes.Buffer
	printAccounts(&all, accounts, false)
	assert.Contains(t, all.String(), "Acme")
	assert.Contains(t, all.String(), "Antiga")

	var active bytes.Buffer
	printAccounts(&active, accounts, true)
	assert.Contains(t, active.String(), "Acme")
	assert.NotContains(t, active.String(), "Antiga")
}
