package config

// Entity prefixes for consistent key generation
const (
	// Customer records keyed by assigned identifier use CustomerPrefix_<id>;
	// records persisted before identity assignment get a generated key with
	// the same prefix.
	CustomerPrefix = "CUST"

	// Registration journal entries
	RegistrationLogPrefix = "REGLOG"
)

// State keys for registration bookkeeping
const (
	// CustomerSequenceKey holds the last identifier handed out by the
	// ledger-backed identity sequence.
	CustomerSequenceKey = "SEQ_CUSTOMER"
)

// Composite key object types
const (
	CustomerIndexObjectType   = "customer"
	RegistrationLogObjectType = "registrationLog"
)
