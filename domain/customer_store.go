package domain

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
	"github.com/blockchain-onboarding-platform/registration-chaincode/utils"
)

// LedgerCustomerStore persists customers in the world state. Customers with
// an assigned identifier are keyed by it; customers without one get a
// generated key with the same prefix. Each record also gets a composite
// index entry so List can enumerate the stored customers.
type LedgerCustomerStore struct{}

var _ CustomerStore = (*LedgerCustomerStore)(nil)

// NewLedgerCustomerStore creates a ledger-backed customer store
func NewLedgerCustomerStore() *LedgerCustomerStore {
	return &LedgerCustomerStore{}
}

// Save writes the customer to the world state. Existing state is never
// consulted: saving the same customer twice stores two records.
func (s *LedgerCustomerStore) Save(stub shim.ChaincodeStubInterface, customer *Customer) error {
	key := s.stateKey(customer)

	data, err := utils.MarshalJSON(customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer: %v", err)
	}

	if err := stub.PutState(key, data); err != nil {
		return fmt.Errorf("failed to store customer: %v", err)
	}

	indexKey, err := stub.CreateCompositeKey(config.CustomerIndexObjectType, []string{key})
	if err != nil {
		return fmt.Errorf("failed to create customer index key: %v", err)
	}
	if err := stub.PutState(indexKey, []byte(key)); err != nil {
		return fmt.Errorf("failed to store customer index entry: %v", err)
	}

	return nil
}

// Get reads the customer stored under the given identifier
func (s *LedgerCustomerStore) Get(stub shim.ChaincodeStubInterface, customerID int64) (*Customer, error) {
	key := fmt.Sprintf("%s_%d", config.CustomerPrefix, customerID)

	data, err := stub.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read customer %d: %v", customerID, err)
	}
	if data == nil {
		return nil, ErrNotFound
	}

	var customer Customer
	if err := utils.UnmarshalJSON(data, &customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer %d: %v", customerID, err)
	}

	return &customer, nil
}

// List returns every stored customer, in index order
func (s *LedgerCustomerStore) List(stub shim.ChaincodeStubInterface) ([]*Customer, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(config.CustomerIndexObjectType, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to query customer index: %v", err)
	}
	defer iterator.Close()

	customers := make([]*Customer, 0)
	for iterator.HasNext() {
		entry, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate customer index: %v", err)
		}

		data, err := stub.GetState(string(entry.Value))
		if err != nil {
			return nil, fmt.Errorf("failed to read customer %s: %v", entry.Value, err)
		}
		if data == nil {
			continue
		}

		var customer Customer
		if err := utils.UnmarshalJSON(data, &customer); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customer %s: %v", entry.Value, err)
		}
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (s *LedgerCustomerStore) stateKey(customer *Customer) string {
	if customer.HasID() {
		return fmt.Sprintf("%s_%d", config.CustomerPrefix, customer.CustomerID)
	}
	return utils.GenerateID(config.CustomerPrefix)
}
