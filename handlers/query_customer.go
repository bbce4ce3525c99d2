package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// GetCustomer returns the customer stored under the given identifier
func (h *RegistrationHandler) GetCustomer(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	customerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid customer identifier %q: %v", args[0], err)
	}

	customer, err := h.customerStore.Get(stub, customerID)
	if err != nil {
		return nil, err
	}

	return json.Marshal(customer)
}

// ListCustomers returns every stored customer
func (h *RegistrationHandler) ListCustomers(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 0, got %d", len(args))
	}

	customers, err := h.customerStore.List(stub)
	if err != nil {
		return nil, err
	}

	return json.Marshal(customers)
}

// GetRegistrationLog returns the registration journal
func (h *RegistrationHandler) GetRegistrationLog(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 0, got %d", len(args))
	}

	entries, err := h.registrationLog.Entries(stub)
	if err != nil {
		return nil, err
	}

	return json.Marshal(entries)
}
