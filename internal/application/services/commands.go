package services

type CreateAccountCommand struct {
	AccountNumber       string
	InitialBalanceCents int64
	Currency            string
}

type DepositCommand struct {
	AccountNumber string
	AmountCents   int64
	Currency      string
}

type WithdrawCommand struct {
	AccountNumber string
	AmountCents   int64
	Currency      string
}

type TransferCommand struct {
	FromAccountNumber string
	ToAccountNumber   string
	AmountCents       int64
	Currency          string
}
