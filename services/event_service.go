package services

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
	"github.com/blockchain-onboarding-platform/registration-chaincode/domain"
	"github.com/blockchain-onboarding-platform/registration-chaincode/utils"
)

// EventPayload is the envelope for every event this chaincode emits
type EventPayload struct {
	EventType  string            `json:"eventType"`
	EntityID   string            `json:"entityID,omitempty"`
	EntityType string            `json:"entityType"`
	Timestamp  string            `json:"timestamp"`
	Data       interface{}       `json:"data,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// EventService handles event emission for registration operations
type EventService struct{}

// NewEventService creates a new event service
func NewEventService() *EventService {
	return &EventService{}
}

// EmitEvent marshals the payload and sets it as the transaction event
func (es *EventService) EmitEvent(stub shim.ChaincodeStubInterface, eventName string, payload EventPayload) error {
	data, err := utils.MarshalJSON(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %v", err)
	}

	if err := stub.SetEvent(eventName, data); err != nil {
		return fmt.Errorf("failed to emit event %s: %v", eventName, err)
	}

	return nil
}

// EmitCustomerRegistered emits a customer registered event
func (es *EventService) EmitCustomerRegistered(stub shim.ChaincodeStubInterface, workflow string, customer *domain.Customer) error {
	entityID := ""
	if customer.HasID() {
		entityID = strconv.FormatInt(customer.CustomerID, 10)
	}

	payload := EventPayload{
		EventType:  config.EventCustomerRegistered,
		EntityID:   entityID,
		EntityType: "Customer",
		Timestamp:  utils.GetCurrentTimeString(),
		Data:       customer,
		Metadata: map[string]string{
			"workflow": workflow,
			"email":    customer.Email,
		},
	}

	return es.EmitEvent(stub, config.EventCustomerRegistered, payload)
}

// EmitCustomersRegistered emits one event covering a whole batch. A
// transaction carries a single chaincode event, so batch workflows aggregate
// instead of emitting per customer.
func (es *EventService) EmitCustomersRegistered(stub shim.ChaincodeStubInterface, workflow string, customers []*domain.Customer) error {
	payload := EventPayload{
		EventType:  config.EventCustomerRegistered,
		EntityType: "Customer",
		Timestamp:  utils.GetCurrentTimeString(),
		Data:       customers,
		Metadata: map[string]string{
			"workflow": workflow,
			"count":    strconv.Itoa(len(customers)),
		},
	}

	return es.EmitEvent(stub, config.EventCustomerRegistered, payload)
}
