package status

import "strconv"

// Errc is a portable, POSIX-style error condition. It is the generic
// representation every domain may decode its values to, which is what lets
// codes from unrelated domains be compared.
//
// Errc values are platform independent; they are not errno numbers.
type Errc int32

// Generic error conditions.
const (
	ErrcUnknown Errc = -1
	ErrcSuccess Errc = 0

	ErrcAddressFamilyNotSupported Errc = iota
	ErrcAddressInUse
	ErrcAddressNotAvailable
	ErrcAlreadyConnected
	ErrcArgumentListTooLong
	ErrcArgumentOutOfDomain
	ErrcBadAddress
	ErrcBadFileDescriptor
	ErrcBadMessage
	ErrcBrokenPipe
	ErrcConnectionAborted
	ErrcConnectionAlreadyInProgress
	ErrcConnectionRefused
	ErrcConnectionReset
	ErrcCrossDeviceLink
	ErrcDestinationAddressRequired
	ErrcDeviceOrResourceBusy
	ErrcDirectoryNotEmpty
	ErrcExecutableFormatError
	ErrcFileExists
	ErrcFileTooLarge
	ErrcFilenameTooLong
	ErrcFunctionNotSupported
	ErrcHostUnreachable
	ErrcIllegalByteSequence
	ErrcInappropriateIOControlOperation
	ErrcInterrupted
	ErrcInvalidArgument
	ErrcInvalidSeek
	ErrcIOError
	ErrcIsADirectory
	ErrcMessageSize
	ErrcNetworkDown
	ErrcNetworkReset
	ErrcNetworkUnreachable
	ErrcNoBufferSpace
	ErrcNoChildProcess
	ErrcNoLockAvailable
	ErrcNoSuchDevice
	ErrcNoSuchDeviceOrAddress
	ErrcNoSuchFileOrDirectory
	ErrcNoSuchProcess
	ErrcNotADirectory
	ErrcNotASocket
	ErrcNotConnected
	ErrcNotEnoughMemory
	ErrcNotSupported
	ErrcOperationCanceled
	ErrcOperationInProgress
	ErrcOperationNotPermitted
	ErrcOperationNotSupported
	ErrcOperationWouldBlock
	ErrcPermissionDenied
	ErrcProtocolError
	ErrcProtocolNotSupported
	ErrcReadOnlyFileSystem
	ErrcResourceDeadlockWouldOccur
	ErrcResourceUnavailableTryAgain
	ErrcResultOutOfRange
	ErrcTimedOut
	ErrcTooManyFilesOpen
	ErrcTooManyFilesOpenInSystem
	ErrcTooManyLinks
	ErrcTooManySymbolicLinkLevels
	ErrcValueTooLarge
	ErrcWrongProtocolType
)

type errcInfo struct {
	name      string
	message   string
	retryable bool
}

var errcTable = map[Errc]errcInfo{
	ErrcUnknown: {"unknown", "unknown error", false},
	ErrcSuccess: {"success", "success", false},

	ErrcAddressFamilyNotSupported:       {"address_family_not_supported", "address family not supported by protocol", false},
	ErrcAddressInUse:                    {"address_in_use", "address already in use", true},
	ErrcAddressNotAvailable:             {"address_not_available", "cannot assign requested address", false},
	ErrcAlreadyConnected:                {"already_connected", "transport endpoint is already connected", false},
	ErrcArgumentListTooLong:             {"argument_list_too_long", "argument list too long", false},
	ErrcArgumentOutOfDomain:             {"argument_out_of_domain", "numerical argument out of domain", false},
	ErrcBadAddress:                      {"bad_address", "bad address", false},
	ErrcBadFileDescriptor:               {"bad_file_descriptor", "bad file descriptor", false},
	ErrcBadMessage:                      {"bad_message", "bad message", false},
	ErrcBrokenPipe:                      {"broken_pipe", "broken pipe", false},
	ErrcConnectionAborted:               {"connection_aborted", "software caused connection abort", true},
	ErrcConnectionAlreadyInProgress:     {"connection_already_in_progress", "operation already in progress", false},
	ErrcConnectionRefused:               {"connection_refused", "connection refused", true},
	ErrcConnectionReset:                 {"connection_reset", "connection reset by peer", true},
	ErrcCrossDeviceLink:                 {"cross_device_link", "invalid cross-device link", false},
	ErrcDestinationAddressRequired:      {"destination_address_required", "destination address required", false},
	ErrcDeviceOrResourceBusy:            {"device_or_resource_busy", "device or resource busy", true},
	ErrcDirectoryNotEmpty:               {"directory_not_empty", "directory not empty", false},
	ErrcExecutableFormatError:           {"executable_format_error", "exec format error", false},
	ErrcFileExists:                      {"file_exists", "file exists", false},
	ErrcFileTooLarge:                    {"file_too_large", "file too large", false},
	ErrcFilenameTooLong:                 {"filename_too_long", "file name too long", false},
	ErrcFunctionNotSupported:            {"function_not_supported", "function not implemented", false},
	ErrcHostUnreachable:                 {"host_unreachable", "no route to host", true},
	ErrcIllegalByteSequence:             {"illegal_byte_sequence", "invalid or incomplete multibyte or wide character", false},
	ErrcInappropriateIOControlOperation: {"inappropriate_io_control_operation", "inappropriate ioctl for device", false},
	ErrcInterrupted:                     {"interrupted", "interrupted system call", true},
	ErrcInvalidArgument:                 {"invalid_argument", "invalid argument", false},
	ErrcInvalidSeek:                     {"invalid_seek", "illegal seek", false},
	ErrcIOError:                         {"io_error", "input/output error", false},
	ErrcIsADirectory:                    {"is_a_directory", "is a directory", false},
	ErrcMessageSize:                     {"message_size", "message too long", false},
	ErrcNetworkDown:                     {"network_down", "network is down", true},
	ErrcNetworkReset:                    {"network_reset", "network dropped connection on reset", true},
	ErrcNetworkUnreachable:              {"network_unreachable", "network is unreachable", true},
	ErrcNoBufferSpace:                   {"no_buffer_space", "no buffer space available", true},
	ErrcNoChildProcess:                  {"no_child_process", "no child processes", false},
	ErrcNoLockAvailable:                 {"no_lock_available", "no locks available", true},
	ErrcNoSuchDevice:                    {"no_such_device", "no such device", false},
	ErrcNoSuchDeviceOrAddress:           {"no_such_device_or_address", "no such device or address", false},
	ErrcNoSuchFileOrDirectory:           {"no_such_file_or_directory", "no such file or directory", false},
	ErrcNoSuchProcess:                   {"no_such_process", "no such process", false},
	ErrcNotADirectory:                   {"not_a_directory", "not a directory", false},
	ErrcNotASocket:                      {"not_a_socket", "socket operation on non-socket", false},
	ErrcNotConnected:                    {"not_connected", "transport endpoint is not connected", true},
	ErrcNotEnoughMemory:                 {"not_enough_memory", "cannot allocate memory", true},
	ErrcNotSupported:                    {"not_supported", "not supported", false},
	ErrcOperationCanceled:               {"operation_canceled", "operation canceled", false},
	ErrcOperationInProgress:             {"operation_in_progress", "operation now in progress", false},
	ErrcOperationNotPermitted:           {"operation_not_permitted", "operation not permitted", false},
	ErrcOperationNotSupported:           {"operation_not_supported", "operation not supported", false},
	ErrcOperationWouldBlock:             {"operation_would_block", "operation would block", true},
	ErrcPermissionDenied:                {"permission_denied", "permission denied", false},
	ErrcProtocolError:                   {"protocol_error", "protocol error", false},
	ErrcProtocolNotSupported:            {"protocol_not_supported", "protocol not supported", false},
	ErrcReadOnlyFileSystem:              {"read_only_file_system", "read-only file system", false},
	ErrcResourceDeadlockWouldOccur:      {"resource_deadlock_would_occur", "resource deadlock avoided", true},
	ErrcResourceUnavailableTryAgain:     {"resource_unavailable_try_again", "resource temporarily unavailable", true},
	ErrcResultOutOfRange:                {"result_out_of_range", "numerical result out of range", false},
	ErrcTimedOut:                        {"timed_out", "connection timed out", true},
	ErrcTooManyFilesOpen:                {"too_many_files_open", "too many open files", true},
	ErrcTooManyFilesOpenInSystem:        {"too_many_files_open_in_system", "too many open files in system", true},
	ErrcTooManyLinks:                    {"too_many_links", "too many links", false},
	ErrcTooManySymbolicLinkLevels:       {"too_many_symbolic_link_levels", "too many levels of symbolic links", false},
	ErrcValueTooLarge:                   {"value_too_large", "value too large for defined data type", false},
	ErrcWrongProtocolType:               {"wrong_protocol_type", "protocol wrong type for socket", false},
}

var errcByName = func() map[string]Errc {
	m := make(map[string]Errc, len(errcTable))
	for e, info := range errcTable {
		m[info.name] = e
	}
	return m
}()

// String returns the snake_case name of the condition.
func (e Errc) String() string {
	if info, ok := errcTable[e]; ok {
		return info.name
	}
	return "errc(" + strconv.Itoa(int(e)) + ")"
}

// Message returns the human-readable description of the condition.
func (e Errc) Message() string {
	if info, ok := errcTable[e]; ok {
		return info.message
	}
	return "unknown generic error " + strconv.Itoa(int(e))
}

// Retryable reports whether the condition is usually transient, so that
// repeating the operation may succeed.
func (e Errc) Retryable() bool {
	return errcTable[e].retryable
}

// MakeStatusCode converts e to a code of the Generic domain.
func (e Errc) MakeStatusCode() StatusCode[Errc] {
	return Generic.Code(e)
}

// ParseErrc returns the condition with the given snake_case name.
func ParseErrc(name string) (Errc, bool) {
	e, ok := errcByName[name]
	return e, ok
}

// genericSemantics gives the Generic domain its meaning.
type genericSemantics struct{}

func (genericSemantics) Message(v Errc) string     { return v.Message() }
func (genericSemantics) Success(v Errc) bool       { return v == ErrcSuccess }
func (genericSemantics) Generic(v Errc) Errc       { return v }
func (genericSemantics) FormatValue(v Errc) string { return v.String() }

// Generic is the domain of portable error conditions. Every other domain can
// be compared with it through its generic decoding.
var Generic = NewDomain[Errc]("generic", genericSemantics{},
	WithUUID("746d3d9a-0f5e-4c3b-9a2d-8e1f6b7c4d21"))
