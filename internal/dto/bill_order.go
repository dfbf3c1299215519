package dto

import (
	"github.com/emersonvf/centavo/internal/core/domain"
)

// UpdateBillOrderRequest replaces the manual bill ordering. ExpectedVersion
// must match the stored version; a stale value is rejected with a conflict.
type UpdateBillOrderRequest struct {
	TransactionIDs  []string `json:"transactionIDs" binding:"required"`
	ExpectedVersion int64    `json:"expectedVersion"`
}

// BillOrderResponse returns the stored manual ordering and its version.
type BillOrderResponse struct {
	TransactionIDs []string `json:"transactionIDs"`
	Version        int64    `json:"version"`
}

// ToBillOrderResponse converts a domain.BillOrder to its response DTO.
func ToBillOrderResponse(o *domain.BillOrder) BillOrderResponse {
	ids := o.TransactionIDs
	if ids == nil {
		ids = []string{}
	}
	return BillOrderResponse{TransactionIDs: ids, Version: o.Version}
}
