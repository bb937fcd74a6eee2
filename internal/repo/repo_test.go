package repo

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	accountrepo "github.com/vcarvalho/fiado/internal/repo/account-repo"
	customerrepo "github.com/vcarvalho/fiado/internal/repo/customer-repo"
	transactionrepo "github.com/vcarvalho/fiado/internal/repo/transaction-repo"
	"github.com/vcarvalho/fiado/internal/sqlite"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repos := New(db, sqlite.NewMockTXManager(ctrl))

	assert.NotNil(t, repos.Customers)
	assert.NotNil(t, repos.Transactions)
	assert.NotNil(t, repos.Accounts)

	assert.IsType(t, &customerrepo.Repository{}, repos.Customers)
	assert.IsType(t, &transactionrepo.Repository{}, repos.Transactions)
	assert.IsType(t, &accountrepo.Repository{}, repos.Accounts)
}
