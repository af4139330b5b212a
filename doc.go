// Package status provides polymorphic status codes.
//
// A status code pairs a domain with a domain-specific value. The domain owns
// every piece of meaning: how the value renders, whether it is a success, how
// it decodes to a portable generic condition, and which codes of other
// domains it is equivalent to. Codes are plain values. They can be copied,
// compared and passed across package boundaries without the receiver knowing
// which domain they came from.
//
// # Features
//
//   - Any number of independent domains (POSIX errno, platform codes, tables
//     loaded from configuration) behind one Code interface
//   - Typed codes (StatusCode) and fixed-layout erased codes (ErasedCode)
//   - Errored codes that are guaranteed to be failures and implement error
//   - Symmetric cross-domain equivalence through a generic condition set
//   - Compile-time gated erasure and factory conversion
//
// # Domains
//
// A domain is created once, usually as a package-level variable:
//
//	type FileErr int32
//
//	type fileSemantics struct{}
//
//	func (fileSemantics) Message(v FileErr) string { return fileMessages[v] }
//	func (fileSemantics) Success(v FileErr) bool   { return v == 0 }
//
//	var FileErrors = status.NewDomain[FileErr]("file_errors", fileSemantics{})
//
// Semantics may additionally implement GenericDecoder, Equivalencer,
// Defaulter and ValueFormatter. Domains are compared by identity (DomainID),
// never by name. Use WithUUID when separately built programs exchange
// erased codes and must agree on identities.
//
// # Status codes
//
//	c := FileErrors.Code(FileNotFound)
//	if c.Failure() {
//	    log.Println(c.Message())
//	}
//
// The zero StatusCode is empty: it has no domain and is neither a success nor
// a failure. No operation on a status code panics or returns an error; the
// outcome of an operation is the state of the code itself.
//
// # Erasure
//
// Erase converts a StatusCode whose value is a scalar into an ErasedCode.
// Relocate does the same for pointer-free composite values whose type has a
// MoveRelocating marker method. Both are constrained at compile time, so
// trying to erase a string or a pointer-carrying type does not build.
// Relocatable types are checked for size once, when their domain is created.
//
//	e := status.Erase(FileErrors.Code(FileNotFound))
//	fmt.Println(e.Message()) // dispatches to FileErrors
//
// The binary form of an ErasedCode is ErasedSize bytes: the domain ID
// followed by PayloadSize payload bytes.
//
// # Errored codes
//
// ErroredStatusCode and ErroredCode wrap a code that must be a failure. The
// check runs exactly once, in the constructor. Constructing an errored code
// from a successful one is a programming error: the package logs the
// violation and terminates the process with ExitCodeInvariant. It does not
// panic and it does not return an error.
//
//	func open(name string) (*File, error) {
//	    ...
//	    return nil, FileErrors.Errored(FileNotFound)
//	}
//
// # Equivalence
//
// Equivalent is a semantic comparison. Each domain is asked about its own
// code, then the generic decodings of both codes are compared. The relation
// is reflexive and symmetric for every pair of codes, erased or not.
//
//	status.Equivalent(FileErrors.Code(FileNotFound), posix.New(unix.ENOENT)) // true
//
// Errored codes take part in errors.Is through the same relation.
//
// # Factories
//
// Types that own a conversion implement Maker and work with Make,
// MakeErrored and EquivalentTo. Types from other packages can be given a
// conversion with RegisterFactory, after which From, FromError and
// EquivalentValue accept them.
//
// # Concurrency
//
// Domains are immutable after creation and status codes are values, so all
// of them may be read from any number of goroutines. The domain and factory
// registries are internally synchronized.
package status
