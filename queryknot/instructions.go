package queryknot

// InstructionsVersion identifies the current formatting-instructions text.
// Prompts that pin a version keep working when the wording changes: old
// revisions stay available as constants and are never edited in place.
const InstructionsVersion = "1"

// Instructions returns the current natural-language description of the
// QueryKnot grammar, intended for verbatim interpolation into an LLM
// prompt. The text is constant and document-independent.
func Instructions() string {
	return InstructionsV1
}

// InstructionsV1 is revision 1 of the formatting instructions.
const InstructionsV1 = `Output Formatting Instructions:
    Output is formatted using a lightweight data format called QueryKnot.
    QueryKnot flattens objects into key-value pairs, one pair per line.
    A key is separated from its value by a single space.

- Key Format: Keys are dot separated paths. Dots express nesting.
    - Examples: user.name user.age user.is_premium_member topics settings.theme

- Value Data Types:
    - String: Enclosed in double quotes. Escape embedded quotes and backslashes with a backslash.
        - Examples: "hello" "hello \"world\""

    - Number: Integer or decimal, positive or negative. No exponent notation.
        - Examples: 1 -10 25.5 -0.25

    - Boolean: Lowercase true or false.
        - Examples: true false

    - Collection: Space separated strings, numbers, or booleans inside square brackets.
      Collections must not contain other collections or objects.
        - Examples: [1 2 3] ["a" "b"] [true false]

Do not output anything except QueryKnot key-value pairs. Do not repeat a key.

Example QueryKnot Output:
    user.name "John Doe"
    user.age 25
    user.is_premium_member true
    hobbies ["coding" "reading" "swimming"]
    settings.theme "dark"
`
