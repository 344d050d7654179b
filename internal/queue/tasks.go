package queue

import (
	"encoding/json"

	"github.com/optomarket/optomarket-api/internal/constants"

	"github.com/hibiken/asynq"
)

// SupplierStatsRecalcPayload asks the worker to rebuild aggregate
// order statistics for one supplier.
type SupplierStatsRecalcPayload struct {
	SupplierID uint `json:"supplier_id"`
}

// NewSupplierStatsRecalcTask builds the asynq task.
func NewSupplierStatsRecalcTask(supplierID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(SupplierStatsRecalcPayload{SupplierID: supplierID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskSupplierStatsRecalc, payload), nil
}
