package services

import (
	"encoding/json"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
	"github.com/blockchain-onboarding-platform/registration-chaincode/domain"
)

func TestEventService_EmitCustomerRegistered(t *testing.T) {
	stub := shimtest.NewMockStub("registration", nil)
	eventService := NewEventService()

	customer := domain.NewCustomer("John", "Doe")
	customer.SetEmail("john.doe@example.com")
	require.NoError(t, customer.AssignID(3))

	stub.MockTransactionStart("tx1")
	err := eventService.EmitCustomerRegistered(stub, "RegisterCustomer", customer)
	stub.MockTransactionEnd("tx1")
	require.NoError(t, err)

	event := <-stub.ChaincodeEventsChannel
	assert.Equal(t, config.EventCustomerRegistered, event.EventName)

	var payload EventPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, config.EventCustomerRegistered, payload.EventType)
	assert.Equal(t, "3", payload.EntityID)
	assert.Equal(t, "Customer", payload.EntityType)
	assert.Equal(t, "RegisterCustomer", payload.Metadata["workflow"])
	assert.Equal(t, "john.doe@example.com", payload.Metadata["email"])
	assert.NotEmpty(t, payload.Timestamp)
}

func TestEventService_EmitCustomerRegistered_WithoutIdentifier(t *testing.T) {
	stub := shimtest.NewMockStub("registration", nil)
	eventService := NewEventService()

	customer := domain.NewCustomer("Jane", "Smith")

	stub.MockTransactionStart("tx1")
	err := eventService.EmitCustomerRegistered(stub, "RegisterCustomerBatch", customer)
	stub.MockTransactionEnd("tx1")
	require.NoError(t, err)

	event := <-stub.ChaincodeEventsChannel

	var payload EventPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Empty(t, payload.EntityID)
}

func TestEventService_EmitCustomersRegistered(t *testing.T) {
	stub := shimtest.NewMockStub("registration", nil)
	eventService := NewEventService()

	customers := []*domain.Customer{
		domain.NewCustomer("John", "Doe"),
		domain.NewCustomer("Jane", "Smith"),
	}

	stub.MockTransactionStart("tx1")
	err := eventService.EmitCustomersRegistered(stub, "RegisterCustomerBatch", customers)
	stub.MockTransactionEnd("tx1")
	require.NoError(t, err)

	event := <-stub.ChaincodeEventsChannel
	assert.Equal(t, config.EventCustomerRegistered, event.EventName)

	var payload EventPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "RegisterCustomerBatch", payload.Metadata["workflow"])
	assert.Equal(t, "2", payload.Metadata["count"])
}
