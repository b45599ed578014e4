package handler

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"go.uber.org/zap"
)

const maxAccountNameLen = 16

// normalizeAccountName canonicalizes a client-supplied account name: NFC
// normalization then lowercasing, so visually identical names map to one
// account row.
func normalizeAccountName(name string) string {
	return strings.ToLower(norm.NFC.String(name))
}

func validAccountName(name string) bool {
	if len(name) < 3 || len(name) > maxAccountNameLen {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func sendLoginResult(sess *net.Session, code byte) {
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_LOGIN_RESULT)
	w.WriteC(code)
	sess.Send(w.Bytes())
}

// HandleLogin processes C_LOGIN: account name + password. Unknown accounts
// are auto-created (first login registers), matching the config default.
func HandleLogin(sess *net.Session, r *packet.Reader, deps *Deps) {
	rawName := r.ReadS()
	password := r.ReadS()

	name := normalizeAccountName(rawName)
	if !validAccountName(name) || password == "" {
		sendLoginResult(sess, packet.LoginInvalidName)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	account, err := deps.AccountRepo.Load(ctx, name)
	if err != nil {
		deps.Log.Error("account load failed", zap.String("account", name), zap.Error(err))
		sendLoginResult(sess, packet.LoginServerError)
		return
	}

	if account == nil {
		account, err = deps.AccountRepo.Create(ctx, name, password, sess.IP)
		if err != nil {
			deps.Log.Error("account create failed", zap.String("account", name), zap.Error(err))
			sendLoginResult(sess, packet.LoginServerError)
			return
		}
		deps.Log.Info("account auto-created", zap.String("account", name))
	} else {
		if account.Banned {
			sendLoginResult(sess, packet.LoginBanned)
			return
		}
		if !deps.AccountRepo.ValidatePassword(account.PasswordHash, password) {
			deps.Log.Info("bad password", zap.String("account", name), zap.String("ip", sess.IP))
			sendLoginResult(sess, packet.LoginBadPassword)
			return
		}
		// Check already online. The DB flag covers the window between login
		// and world entry, when no in-world player exists under this name yet.
		if account.Online {
			sendLoginResult(sess, packet.LoginAlreadyIn)
			return
		}
	}

	// One session per account: a live in-world player under this name blocks
	// the second login rather than hijacking the first.
	if deps.World.GetByName(name) != nil {
		sendLoginResult(sess, packet.LoginAlreadyIn)
		return
	}

	if err := deps.AccountRepo.UpdateLastActive(ctx, name, sess.IP); err != nil {
		deps.Log.Warn("update last_active failed", zap.String("account", name), zap.Error(err))
	}
	if err := deps.AccountRepo.SetOnline(ctx, name, true); err != nil {
		deps.Log.Warn("set online failed", zap.String("account", name), zap.Error(err))
	}

	sess.AccountName = name
	sess.SetState(packet.StateAuthenticated)
	sendLoginResult(sess, packet.LoginOK)
}
