// Package account holds the in-memory cardholder set loaded at startup.
// Set membership is immutable after load; balance is the only mutable field.
package account

import (
	"bufio"
	"fmt"
	"os"

	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/juju/errors"
)

type Account struct {
	IBAN      string
	LastName  string
	FirstName string
	PIN       uint16
	Balance   uint64
}

func (a Account) FullName() string { return a.LastName + " " + a.FirstName }

type Store struct {
	log      *log2.Log
	accounts []Account
}

func NewStore(log *log2.Log) *Store {
	return &Store{log: log}
}

// LoadFile reads the flat-file manifest: first token is the record count,
// then count records of `iban lastName firstName pin balance`, all
// whitespace-delimited.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Annotatef(err, "account database %s", path)
	}
	defer f.Close()
	return s.Load(bufio.NewReader(f))
}

func (s *Store) Load(r *bufio.Reader) error {
	var count int
	if _, err := fmt.Fscan(r, &count); err != nil {
		return errors.Annotate(err, "account database record count")
	}
	accounts := make([]Account, 0, count)
	for i := 0; i < count; i++ {
		var a Account
		_, err := fmt.Fscan(r, &a.IBAN, &a.LastName, &a.FirstName, &a.PIN, &a.Balance)
		if err != nil {
			return errors.Annotatef(err, "account database record %d", i+1)
		}
		accounts = append(accounts, a)
	}
	s.accounts = accounts
	return nil
}

// LoadPlaceholder installs the single fallback account used when the
// database file is absent or unreadable.
func (s *Store) LoadPlaceholder() {
	s.accounts = []Account{{
		IBAN:      "RO-13-ABBK-0345-2342-0255-92",
		LastName:  "Placeholder",
		FirstName: "Client",
		PIN:       0,
		Balance:   100,
	}}
}

func (s *Store) Len() int { return len(s.accounts) }

// FindByPIN returns the index of the first account with a matching PIN.
// PIN uniqueness is not enforced; first match wins.
func (s *Store) FindByPIN(pin uint16) (int, bool) {
	for i := range s.accounts {
		if s.accounts[i].PIN == pin {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) Get(i int) Account { return s.accounts[i] }

// Credit and Debit mutate unconditionally. The transaction state machine is
// solely responsible for checking sufficient funds before Debit; an
// unchecked call can wrap below zero.
func (s *Store) Credit(i int, amount uint64) { s.accounts[i].Balance += amount }
func (s *Store) Debit(i int, amount uint64)  { s.accounts[i].Balance -= amount }
