package main

import (
	"log"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/chaincode"
)

func main() {
	registrationChaincode := chaincode.NewRegistrationContract()

	if err := shim.Start(registrationChaincode); err != nil {
		log.Fatalf("Error starting Registration chaincode: %v", err)
	}
}
