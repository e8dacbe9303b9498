package services

import "errors"

// Session error taxonomy. Precondition failures are detected before any
// provider call; provider/transaction failures wrap the underlying cause.
var (
	ErrWalletNotFound        = errors.New("wallet not found")
	ErrUnsupportedNetwork    = errors.New("unsupported network")
	ErrContractNotDeployed   = errors.New("ownership contract not deployed on this network")
	ErrNetworkNotRegistered  = errors.New("network not registered with wallet")
	ErrNetworkSwitchRejected = errors.New("network switch rejected")
	ErrNotConnected          = errors.New("wallet not connected")
	ErrNoVotingPower         = errors.New("no voting power")
	ErrAlreadyVoted          = errors.New("already voted on this proposal")
	ErrPurchaseFailed        = errors.New("purchase failed")
	ErrVoteFailed            = errors.New("vote failed")
	ErrClaimFailed           = errors.New("profit claim failed")
	ErrRefreshFailed         = errors.New("balance refresh failed")
)
