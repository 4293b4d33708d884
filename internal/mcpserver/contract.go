package mcpserver

// NoteFormatContract describes the canonical Markdown note format that
// LLM consumers should follow when creating notes.
const NoteFormatContract = `# Ansuz Note Format Contract

Every Markdown note stored in Ansuz follows this structure.

## Structure

` + "```" + `markdown
Body text in standard Markdown.

Use [[wikilinks]] to reference other notes (without .md extension).
Use [[target|alias]] for display text that differs from the target.
Use [[target#Section]] to reference a single section of another note.
` + "```" + `

## Rules

1. **Notes are addressed by display name.** The display name is the file
   name without the ` + "`" + `.md` + "`" + ` extension; it must be unique across the vault.
2. **Wikilinks** use double brackets: ` + "`" + `[[Other Note]]` + "`" + `. The target is the
   display name, not a file path.
3. **Aliases** (` + "`" + `[[Target|shown text]]` + "`" + `) and **section references**
   (` + "`" + `[[Target#Heading]]` + "`" + `) resolve to the same target note.
4. **Headings** use ` + "`" + `#` + "`" + ` syntax; section references match heading text exactly.
5. **Encoding** is UTF-8 with a trailing newline.
6. **No HTML** unless absolutely necessary; prefer Markdown equivalents.

## Example

` + "```" + `markdown
# Weekly standup

Attendees: [[Alice]], Bob.

## Action items

- [[Alice]] to review the [[Design Doc]]
- Bob to update [[Roadmap|the roadmap]]
- Background in [[Project X#Context]]
` + "```" + `
`
