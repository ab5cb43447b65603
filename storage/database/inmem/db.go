package inmemdb

import (
	"sync"

	"github.com/getgradient/gradient/core/peer"
	"github.com/getgradient/gradient/core/session"
	"github.com/getgradient/gradient/core/user"
)

type (
	DB struct {
		user    *userTable
		session *sessionTable
		peer    *peerTable
	}

	userTable struct {
		table map[string]*user.User
		mutex sync.RWMutex
	}

	sessionTable struct {
		table map[string]*session.Session // keyed by user ID
		mutex sync.RWMutex
	}

	peerTable struct {
		table map[string]*peer.Peer
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:    &userTable{table: make(map[string]*user.User)},
		session: &sessionTable{table: make(map[string]*session.Session)},
		peer:    &peerTable{table: make(map[string]*peer.Peer)},
	}
	return db, nil
}
