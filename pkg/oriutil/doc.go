/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The oriutil ("Ori utils") package contains assorted utilities used in
// various other Ori packages. Now, that's a clever way of having a "util"
// package without having a "util" package!
package oriutil
