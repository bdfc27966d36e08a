/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The frontend package contains everything needed to transform Ori source
// code into bytecode. There is no syntax tree in between: the compiler is a
// single-pass Pratt parser that emits instructions as it consumes tokens.
//
// Highlights here are the scanner (lexer) and the compiler.
package frontend
