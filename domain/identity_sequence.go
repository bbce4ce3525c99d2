package domain

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
)

// LedgerIdentitySequence hands out sequential customer identifiers backed by
// a counter in the world state. The first identifier is 1.
type LedgerIdentitySequence struct{}

var _ IdentitySequence = (*LedgerIdentitySequence)(nil)

// NewLedgerIdentitySequence creates a ledger-backed identity sequence
func NewLedgerIdentitySequence() *LedgerIdentitySequence {
	return &LedgerIdentitySequence{}
}

// NextID advances the stored counter and returns its new value
func (s *LedgerIdentitySequence) NextID(stub shim.ChaincodeStubInterface) (int64, error) {
	data, err := stub.GetState(config.CustomerSequenceKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read identity sequence: %v", err)
	}

	var last int64
	if data != nil {
		last, err = strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse identity sequence value %q: %v", data, err)
		}
	}

	next := last + 1
	if err := stub.PutState(config.CustomerSequenceKey, []byte(strconv.FormatInt(next, 10))); err != nil {
		return 0, fmt.Errorf("failed to advance identity sequence: %v", err)
	}

	return next, nil
}
