package dto

import "github.com/SscSPs/naira_billpay/internal/core/domain"

// VerifyAccountRequest is the body of POST /api/verify-account.
type VerifyAccountRequest struct {
	BankCode      string `json:"bankCode" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required,number"`
}

// BanksResponse is the data of GET /api/banks.
type BanksResponse []domain.Bank

// AccountDetailsResponse is the data of a successful account verification.
type AccountDetailsResponse struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankID        int    `json:"bank_id"`
}

// ToAccountDetailsResponse converts a domain.AccountDetails to AccountDetailsResponse DTO
func ToAccountDetailsResponse(details *domain.AccountDetails) AccountDetailsResponse {
	return AccountDetailsResponse{
		AccountNumber: details.AccountNumber,
		AccountName:   details.AccountName,
		BankID:        details.BankID,
	}
}
