package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile          = "file_path"
	FieldBillID        = "bill_id"
	FieldTransactionID = "transaction_id"
	FieldBudgetID      = "budget_id"
	FieldCategory      = "category"
	FieldFrequency     = "frequency"
	FieldDueDate       = "due_date"
	FieldAmount        = "amount"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldCount         = "count"
	FieldCollection    = "collection"
	FieldModel         = "model"
	FieldOutputFile    = "output_file"
)
