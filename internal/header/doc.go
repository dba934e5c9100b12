// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Sven - Sven is a Conventional Commits linter that explains exactly what is wrong with a commit header and where the fix belongs.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package header aligns the tokens of a commit header with the Conventional
// Commits grammar (type(scope)!: description) and reports what is missing or
// misplaced.
//
// The pipeline is:
//
//  1. NewCandidate wraps the tokens of the first line as Unsigned blocks
//     behind a Root block.
//  2. FindSolutions explores every structurally valid alignment. Each
//     mismatch between a token and the expected grammar slot forks the walk
//     into a "missing slot" and a "misplaced token" (portal) hypothesis.
//  3. Select keeps the cheapest alignment.
//  4. Project assigns a sortable Position to every block, including the
//     synthetic ones, and resolves where each grammar slot was found.
//  5. Diagnose turns the layout into Issues anchored to the Root, to a token
//     or to an earlier issue, never to a byte column.
//
// Analyzer runs the whole pipeline for a header string.
package header
