/*
Package lexmach wraps scanners generated by lexmachine into the Tokenizer
interface of package ll/scanner.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

An adapter is set up from three ingredients: literal lexemes ("(", "+=", …),
keywords ("if", "while", …) and an init function, which adds the remaining
patterns to the lexer. A pattern's action decides what a match turns into:

    Skip                   ignore the match (white space, comments)
    MakeToken(name, id)    a token of type id, its value is the lexeme
    MakeValueToken(…)      a token, its value converted from the lexeme

The adapter is created once and hands out a scanner for every input:

	LM, err := lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	…
	scan, err := LM.Scanner("input string to tokenize")
	…
	accept, err := parser.Parse(scan)

Tokens carry the line and column of their first character.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
