package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Category_String(t *testing.T) {
	testCases := []struct {
		name   string
		cat    Category
		expect string
	}{
		{name: "already defined", cat: AlreadyDefined, expect: "AlreadyDefinedException"},
		{name: "not defined", cat: NotDefined, expect: "NotDefinedException"},
		{name: "type mismatch", cat: TypeMismatch, expect: "TypeMismatchException"},
		{name: "statement misplacement", cat: StatementMisplacement, expect: "StatementMisplacementException"},
		{name: "wrong accessor", cat: WrongAccessor, expect: "WrongAccessorException"},
		{name: "wrong argument", cat: WrongArgument, expect: "WrongArgumentException"},
		{name: "modifier", cat: Modifier, expect: "ModifierException"},
		{name: "no such array dimension", cat: NoSuchArrayDimension, expect: "NoSuchArrayDimensionException"},
		{name: "unterminated string", cat: UnterminatedString, expect: "UnterminatedStringException"},
		{name: "unterminated comment", cat: UnterminatedComment, expect: "UnterminatedCommentException"},
		{name: "unknown character", cat: UnknownCharacter, expect: "UnknownCharacterException"},
		{name: "allocation failure", cat: AllocationFailure, expect: "AllocationFailureException"},
		{name: "unregistered category falls back", cat: Category(9999), expect: "UnknownException"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.cat.String())
		})
	}
}

func Test_Category_Fatal(t *testing.T) {
	fatal := []Category{UnterminatedString, UnterminatedComment, UnknownCharacter, AllocationFailure}
	for _, c := range fatal {
		assert.True(t, c.Fatal(), c.String())
	}

	recoverable := []Category{AlreadyDefined, NotDefined, TypeMismatch, StatementMisplacement, WrongAccessor, WrongArgument, Modifier, NoSuchArrayDimension}
	for _, c := range recoverable {
		assert.False(t, c.Fatal(), c.String())
	}
}
