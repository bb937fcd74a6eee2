package repo

import (
	accountrepo "github.com/vcarvalho/fiado/internal/repo/account-repo"
	customerrepo "github.com/vcarvalho/fiado/internal/repo/customer-repo"
	transactionrepo "github.com/vcarvalho/fiado/internal/repo/transaction-repo"
	"github.com/vcarvalho/fiado/internal/sqlite"
)

type Repositories struct {
	Customers    *customerrepo.Repository
	Transactions *transactionrepo.Repository
	Accounts     *accountrepo.Repository
}

func New(conn sqlite.Database, txManager sqlite.TXManager) *Repositories {
	return &Repositories{
		Customers:    customerrepo.New(conn, txManager),
		Transactions: transactionrepo.New(conn),
		Accounts:     accountrepo.New(conn),
	}
}
