package models

import (
	"strings"

	"github.com/rpribau/cm-admin-sub000/internal/records"
)

// MatchSignerAccount guesses which account a free-text signer name
// belongs to using case-insensitive word overlap. This is a known-weak
// heuristic kept for display annotation only; never use its result as
// authority data.
func MatchSignerAccount(accounts []records.Account, signerName string) *records.Account {
	signerWords := splitWords(signerName)
	if len(signerWords) == 0 {
		return nil
	}
	var best *records.Account
	bestOverlap := 0
	for i, account := range accounts {
		overlap := 0
		accountWords := splitWords(account.Name)
		for _, word := range signerWords {
			for _, candidate := range accountWords {
				if word == candidate {
					overlap++
					break
				}
			}
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = &accounts[i]
		}
	}
	return best
}

func splitWords(name string) []string {
	words := []string{}
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if len(word) > 1 {
			words = append(words, word)
		}
	}
	return words
}
