/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more straightforward
to describe as set constructions and operations.

Sets keep their elements in order of insertion and identify elements by a
structural hash. Iteration with IterateOnce/Next visits elements added during
the iteration as well, which makes closure computations a simple loop.

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
