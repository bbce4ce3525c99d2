package services

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
	"github.com/blockchain-onboarding-platform/registration-chaincode/domain"
	"github.com/blockchain-onboarding-platform/registration-chaincode/utils"
)

// RegistrationLogEntry records one completed registration for audit purposes
type RegistrationLogEntry struct {
	EntryID       string `json:"entryID"`
	TransactionID string `json:"transactionID"`
	Workflow      string `json:"workflow"`
	CustomerID    int64  `json:"customerID,omitempty"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// RegistrationLog is an append-only journal of completed registrations,
// stored under composite keys in the world state.
type RegistrationLog struct{}

// NewRegistrationLog creates a registration log service
func NewRegistrationLog() *RegistrationLog {
	return &RegistrationLog{}
}

// Record appends one journal entry for a registered customer
func (l *RegistrationLog) Record(stub shim.ChaincodeStubInterface, workflow string, customer *domain.Customer) error {
	entry := RegistrationLogEntry{
		EntryID:       utils.GenerateID(config.RegistrationLogPrefix),
		TransactionID: stub.GetTxID(),
		Workflow:      workflow,
		CustomerID:    customer.CustomerID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Email:         customer.Email,
		Timestamp:     utils.GetCurrentTimeString(),
	}

	compositeKey, err := stub.CreateCompositeKey(config.RegistrationLogObjectType, []string{entry.EntryID})
	if err != nil {
		return fmt.Errorf("failed to create registration log key: %v", err)
	}

	data, err := utils.MarshalJSON(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal registration log entry: %v", err)
	}

	if err := stub.PutState(compositeKey, data); err != nil {
		return fmt.Errorf("failed to store registration log entry: %v", err)
	}

	return nil
}

// Entries returns the recorded journal, in entry-id order
func (l *RegistrationLog) Entries(stub shim.ChaincodeStubInterface) ([]RegistrationLogEntry, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(config.RegistrationLogObjectType, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to query registration log: %v", err)
	}
	defer iterator.Close()

	entries := make([]RegistrationLogEntry, 0)
	for iterator.HasNext() {
		response, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate registration log: %v", err)
		}

		var entry RegistrationLogEntry
		if err := utils.UnmarshalJSON(response.Value, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal registration log entry: %v", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
