// Package rules contains the built-in docstyle rule implementations.
//
// Rules are grouped by family:
//   - structure: required/recommended sections, table of contents
//   - terminology: preferred terms, negative and non-inclusive language
//   - grammar: voice, contractions, heading case, link text
//   - content: KB references, version numbers, PII, image alt text
//   - formatting: inline styles, quote characters, list markers
//   - training: module naming, module sections, code block hygiene
//
// All rules register themselves with check.DefaultRegistry via RegisterAll.
package rules
