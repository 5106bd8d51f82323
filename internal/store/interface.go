package store

import "github.com/azeroual/comptable/internal/model"

// Repository is the full storage surface. *Store implements it both directly
// and bound to a transaction inside ExecTx.
type Repository interface {
	// Account operations
	CreateAccount(acc *model.Account) (int64, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountByCode(code string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	UpdateAccount(acc *model.Account) error
	UpdateAccountBalance(id int64, balanceCents int64) error
	DeleteAccount(id int64) error
	CountReferencingTransactions(accountID int64) (int64, error)

	// Transaction operations
	CreateTransaction(tx *model.Transaction) (int64, error)
	GetTransactionByID(id int64) (*model.Transaction, error)
	GetAllTransactions(limit int) ([]*model.Transaction, error)
	GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error)
	DeleteTransaction(id int64) error
	LegTotals(accountID int64) (debitCents, creditCents int64, err error)

	// Journal operations
	CreateJournalEntry(entry *model.JournalEntry) (int64, error)
	GetJournalEntryByTransaction(txID int64) (*model.JournalEntry, error)
	DeleteJournalEntryByTransaction(txID int64) error
	ListJournal(limit int) ([]*model.JournalLine, error)

	// User operations
	CreateUser(user *model.User) (int64, error)
	GetUserByID(id int64) (*model.User, error)
	GetUserByName(name string) (*model.User, error)
	GetAllUsers() ([]*model.User, error)

	// Client operations
	CreateClient(client *model.Client) (int64, error)
	GetClientByID(id int64) (*model.Client, error)
	GetAllClients() ([]*model.Client, error)
	DeleteClient(id int64) error
	CountClientInvoices(clientID int64) (int64, error)

	// Category operations
	CreateCategory(category *model.Category) (int64, error)
	GetCategoryByID(id int64) (*model.Category, error)
	GetCategoryByName(name string) (*model.Category, error)
	GetAllCategories() ([]*model.Category, error)
	UpdateCategory(category *model.Category) error
	DeleteCategory(id int64) error
	CountCategoryProducts(categoryID int64) (int64, error)

	// Product operations
	CreateProduct(product *model.Product) (int64, error)
	GetProductByID(id int64) (*model.Product, error)
	GetAllProducts() ([]*model.Product, error)
	DeleteProduct(id int64) error

	// Invoice operations
	CreateInvoiceWithLines(inv *model.Invoice, lines []*model.InvoiceLine) (int64, error)
	GetInvoiceByID(id int64) (*model.Invoice, error)
	GetAllInvoices() ([]*model.Invoice, error)
	DeleteInvoice(id int64) error

	Close() error
}
