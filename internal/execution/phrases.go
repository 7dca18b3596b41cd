package execution

import (
	"math/rand"
)

var defaultPhrases = []string{
	"Concluído! Vamos pra cima! 🔥",
	"Mandou muito! Dia destruído 💪",
	"Parabéns, guerreiro(a)! ⚡",
	"Mais um dia vencido! Bora! 🚀",
	"Você é foda! Descansa agora 👊",
}

// PhraseBook hands out the celebration line shown when a workout is finished.
type PhraseBook struct {
	phrases []string
	intn    func(n int) int
}

func NewPhraseBook() *PhraseBook {
	return &PhraseBook{
		phrases: defaultPhrases,
		intn:    rand.Intn,
	}
}

func (pb *PhraseBook) Random() string {
	return pb.phrases[pb.intn(len(pb.phrases))]
}

func (pb *PhraseBook) All() []string {
	return append([]string(nil), pb.phrases...)
}
