// Package agent turns a free-text utterance into a reply, mutating the
// record store along the way for commands that carry side effects. The
// flow is classify → extract entities → validate against the store →
// mutate → delegate to the hr collaborator for confirmation text.
package agent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xtreme16/asri/internal/hr"
	"github.com/xtreme16/asri/internal/intent"
	"github.com/xtreme16/asri/internal/store"
)

// WelcomeText is the startup banner listing what the assistant can do.
const WelcomeText = "Saya dapat membantu Anda dengan:\n" +
	"- Pertanyaan tentang data karyawan (manajer, sisa cuti, departemen, jabatan, status, email)\n" +
	"- Perintah HR (ajukan cuti, jadwalkan review, lapor pengeluaran, cek status cuti, cari info rekan kerja)\n" +
	"Ketik 'keluar' untuk mengakhiri."

// FarewellText is printed when the user ends the session.
const FarewellText = "Terima kasih, sampai jumpa!"

// RepromptText is the reply to empty input.
const RepromptText = "Silakan ketik pertanyaan atau perintah Anda."

const unclassifiedText = "Maaf, saya tidak mengerti. Apakah ini pertanyaan atau perintah? " +
	"\nContoh pertanyaan: 'siapa manajer Rina?' atau 'sisa cuti Budi berapa?' " +
	"\nContoh perintah: 'ajukan cuti sakit' atau 'jadwalkan review performa'"

const questionHelpText = "Maaf, saya belum mengerti pertanyaan ini. " +
	"\nSaya bisa membantu dengan pertanyaan tentang manajer, sisa cuti, informasi karyawan, " +
	"departemen, jabatan, status, atau email karyawan."

const commandHelpText = "Perintah belum dikenali. Saya bisa membantu dengan: " +
	"\najukan cuti, jadwalkan review performa, cek status cuti, lapor pengeluaran, atau cari info rekan kerja."

// exit keywords, matched case-insensitively.
var exitWords = []string{"keluar", "exit", "quit"}

// IsExit reports whether the input is an exit keyword.
func IsExit(input string) bool {
	trimmed := strings.TrimSpace(input)
	for _, w := range exitWords {
		if strings.EqualFold(trimmed, w) {
			return true
		}
	}
	return false
}

// Engine processes one utterance at a time against the record store and
// the hr collaborator. It is not safe for concurrent use; the session
// model is a single synchronous read-eval-print loop.
type Engine struct {
	store *store.Store
	fns   hr.Functions
	log   *zap.Logger
	now   func() time.Time
}

// New wires an engine. A nil logger is replaced with a no-op one.
func New(st *store.Store, fns hr.Functions, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		store: st,
		fns:   fns,
		log:   log,
		now:   time.Now,
	}
}

// Respond classifies the utterance and routes it to a handler. It never
// returns an error: every failure inside a branch is converted to a
// user-facing line, so the session survives anything but an exit keyword.
func (e *Engine) Respond(utterance string) (reply string) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return RepromptText
	}

	kind := intent.Classify(utterance)

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("handler panic", zap.Any("panic", r), zap.String("utterance", utterance))
			if kind == intent.KindQuestion {
				reply = fmt.Sprintf("Terjadi kesalahan saat memproses pertanyaan: %v", r)
			} else {
				reply = fmt.Sprintf("Terjadi kesalahan saat memproses perintah: %v", r)
			}
		}
		e.log.Info("utterance handled",
			zap.String("kind", kind.String()),
			zap.String("utterance", utterance))
	}()

	switch kind {
	case intent.KindQuestion:
		return e.answerQuestion(utterance)
	case intent.KindCommand:
		return e.runCommand(utterance)
	default:
		return unclassifiedText
	}
}

// reply converts a handler error into its user-facing line. Errors that
// carry their own message (the taxonomy types) are shown verbatim; raw
// failures get the handler's generic prefix.
func (e *Engine) reply(text string, err error, generic string) string {
	if err == nil {
		return text
	}
	var uf userFacing
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	e.log.Error("handler failed", zap.String("context", generic), zap.Error(err))
	return generic + err.Error()
}
