package services

import (
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
	"github.com/blockchain-onboarding-platform/registration-chaincode/domain"
	"github.com/blockchain-onboarding-platform/registration-chaincode/utils"
)

func TestRegistrationLog_RecordAndEntries(t *testing.T) {
	stub := shimtest.NewMockStub("registration", nil)
	registrationLog := NewRegistrationLog()

	first := domain.NewCustomer("John", "Doe")
	first.SetEmail("john.doe@example.com")
	require.NoError(t, first.AssignID(1))
	second := domain.NewCustomer("Jane", "Smith")

	stub.MockTransactionStart("tx1")
	require.NoError(t, registrationLog.Record(stub, "RegisterCustomer", first))
	require.NoError(t, registrationLog.Record(stub, "RegisterCustomerBatch", second))
	stub.MockTransactionEnd("tx1")

	entries, err := registrationLog.Entries(stub)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	workflows := make([]string, 0, len(entries))
	for _, entry := range entries {
		assert.NoError(t, utils.ValidateID(entry.EntryID, config.RegistrationLogPrefix))
		assert.Equal(t, "tx1", entry.TransactionID)

		_, err := utils.ParseTime(entry.Timestamp)
		assert.NoError(t, err)

		workflows = append(workflows, entry.Workflow)
	}
	assert.Contains(t, workflows, "RegisterCustomer")
	assert.Contains(t, workflows, "RegisterCustomerBatch")
}

func TestRegistrationLog_EntriesEmpty(t *testing.T) {
	stub := shimtest.NewMockStub("registration", nil)
	registrationLog := NewRegistrationLog()

	entries, err := registrationLog.Entries(stub)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
