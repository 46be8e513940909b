package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Sandeep0076/budget-sage/internal/apperror"
	"github.com/Sandeep0076/budget-sage/internal/config"
	"github.com/Sandeep0076/budget-sage/internal/fileutils"
	"github.com/Sandeep0076/budget-sage/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Collection names as used in file names and error reporting.
const (
	collectionBills        = "bills"
	collectionTransactions = "transactions"
	collectionCategories   = "categories"
	collectionBudgets      = "budgets"
)

// FileStore persists records as YAML files in a data directory, one file per
// collection. Reads and writes are guarded by a single mutex; the store is
// safe for concurrent use from one process but provides no cross-process
// locking.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// billsFile is the on-disk shape of the bills collection.
type billsFile struct {
	Bills []models.Bill `yaml:"bills"`
}

type transactionsFile struct {
	Transactions []models.Transaction `yaml:"transactions"`
}

type categoriesFile struct {
	Categories []models.Category `yaml:"categories"`
}

type budgetsFile struct {
	Budgets []models.Budget `yaml:"budgets"`
}

// NewFileStore creates a FileStore rooted at dir, creating the directory if
// needed. An empty dir falls back to ".budget-sage/data" under the user's
// home directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".budget-sage", "data")
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory this store writes to.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".yaml")
}

// load reads a collection file into out. A missing file is not an error; out
// is left at its zero value.
func (s *FileStore) load(collection string, out interface{}) error {
	path := s.path(collection)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &apperror.PersistenceError{Collection: collection, Op: "read", Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &apperror.PersistenceError{Collection: collection, Op: "decode", Err: err}
	}
	return nil
}

func (s *FileStore) save(collection string, in interface{}) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return &apperror.PersistenceError{Collection: collection, Op: "encode", Err: err}
	}
	if err := os.WriteFile(s.path(collection), data, models.PermissionDataFile); err != nil {
		return &apperror.PersistenceError{Collection: collection, Op: "write", Err: err}
	}
	return nil
}

// CreateBill appends a new bill record.
func (s *FileStore) CreateBill(ctx context.Context, bill models.Bill) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file billsFile
	if err := s.load(collectionBills, &file); err != nil {
		return models.Bill{}, err
	}
	for _, b := range file.Bills {
		if b.ID == bill.ID {
			return models.Bill{}, &apperror.PersistenceError{
				Collection: collectionBills,
				Op:         "create",
				Err:        fmt.Errorf("duplicate bill ID %s", bill.ID),
			}
		}
	}
	file.Bills = append(file.Bills, bill)
	if err := s.save(collectionBills, &file); err != nil {
		return models.Bill{}, err
	}

	log.WithFields(logrus.Fields{
		"bill_id": bill.ID,
		"name":    bill.Name,
	}).Debug("Created bill")
	return bill, nil
}

// GetBill fetches a bill by ID.
func (s *FileStore) GetBill(ctx context.Context, id string) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file billsFile
	if err := s.load(collectionBills, &file); err != nil {
		return models.Bill{}, err
	}
	for _, b := range file.Bills {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bill{}, &apperror.NotFoundError{Collection: collectionBills, ID: id}
}

// UpdateBill replaces the stored record matching bill.ID.
func (s *FileStore) UpdateBill(ctx context.Context, bill models.Bill) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file billsFile
	if err := s.load(collectionBills, &file); err != nil {
		return models.Bill{}, err
	}
	for i, b := range file.Bills {
		if b.ID == bill.ID {
			bill.UpdatedAt = time.Now()
			file.Bills[i] = bill
			if err := s.save(collectionBills, &file); err != nil {
				return models.Bill{}, err
			}
			return bill, nil
		}
	}
	return models.Bill{}, &apperror.NotFoundError{Collection: collectionBills, ID: bill.ID}
}

// DeleteBill removes a bill by ID.
func (s *FileStore) DeleteBill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file billsFile
	if err := s.load(collectionBills, &file); err != nil {
		return err
	}
	for i, b := range file.Bills {
		if b.ID == id {
			file.Bills = append(file.Bills[:i], file.Bills[i+1:]...)
			return s.save(collectionBills, &file)
		}
	}
	return &apperror.NotFoundError{Collection: collectionBills, ID: id}
}

// ListBills returns all bill records.
func (s *FileStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file billsFile
	if err := s.load(collectionBills, &file); err != nil {
		return nil, err
	}
	return file.Bills, nil
}

// CreateTransaction appends a new ledger entry.
func (s *FileStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file transactionsFile
	if err := s.load(collectionTransactions, &file); err != nil {
		return models.Transaction{}, err
	}
	file.Transactions = append(file.Transactions, tx)
	if err := s.save(collectionTransactions, &file); err != nil {
		return models.Transaction{}, err
	}

	log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"description":    tx.Description,
	}).Debug("Created transaction")
	return tx, nil
}

// ListTransactions returns all ledger entries.
func (s *FileStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file transactionsFile
	if err := s.load(collectionTransactions, &file); err != nil {
		return nil, err
	}
	return file.Transactions, nil
}

// ListTransactionsBetween returns ledger entries with from <= date < to.
func (s *FileStore) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file transactionsFile
	if err := s.load(collectionTransactions, &file); err != nil {
		return nil, err
	}
	var out []models.Transaction
	for _, tx := range file.Transactions {
		if !tx.Date.Before(from) && tx.Date.Before(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// CreateCategory appends a new category.
func (s *FileStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file categoriesFile
	if err := s.load(collectionCategories, &file); err != nil {
		return models.Category{}, err
	}
	file.Categories = append(file.Categories, category)
	if err := s.save(collectionCategories, &file); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// GetCategory fetches a category by ID.
func (s *FileStore) GetCategory(ctx context.Context, id string) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file categoriesFile
	if err := s.load(collectionCategories, &file); err != nil {
		return models.Category{}, err
	}
	for _, c := range file.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, &apperror.NotFoundError{Collection: collectionCategories, ID: id}
}

// ListCategories returns all categories.
func (s *FileStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file categoriesFile
	if err := s.load(collectionCategories, &file); err != nil {
		return nil, err
	}
	return file.Categories, nil
}

// UpsertBudget creates or replaces the budget for its category and month.
func (s *FileStore) UpsertBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file budgetsFile
	if err := s.load(collectionBudgets, &file); err != nil {
		return models.Budget{}, err
	}
	for i, b := range file.Budgets {
		if b.CategoryID == budget.CategoryID && b.Month.Equal(budget.Month) {
			budget.ID = b.ID
			file.Budgets[i] = budget
			if err := s.save(collectionBudgets, &file); err != nil {
				return models.Budget{}, err
			}
			return budget, nil
		}
	}
	file.Budgets = append(file.Budgets, budget)
	if err := s.save(collectionBudgets, &file); err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

// ListBudgets returns all budgets.
func (s *FileStore) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file budgetsFile
	if err := s.load(collectionBudgets, &file); err != nil {
		return nil, err
	}
	return file.Budgets, nil
}
