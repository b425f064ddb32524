// Package randgen implements the logic for randgen binary.
//
// To use this library, create a package with main function as:
//
//     func main() {
//       os.Exit(randgen.Run())
//     }
package randgen
