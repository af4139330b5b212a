//go:build unix

package posix

import (
	"github.com/jmgilman/go/status"
	"golang.org/x/sys/unix"
)

// errnoTable pairs errno values with generic conditions. Some platforms give
// two names the same value (ENOTEMPTY and EEXIST on AIX); the first entry for
// a value wins.
var errnoTable = []struct {
	errno unix.Errno
	errc  status.Errc
}{
	{unix.E2BIG, status.ErrcArgumentListTooLong},
	{unix.EACCES, status.ErrcPermissionDenied},
	{unix.EADDRINUSE, status.ErrcAddressInUse},
	{unix.EADDRNOTAVAIL, status.ErrcAddressNotAvailable},
	{unix.EAFNOSUPPORT, status.ErrcAddressFamilyNotSupported},
	{unix.EAGAIN, status.ErrcResourceUnavailableTryAgain},
	{unix.EALREADY, status.ErrcConnectionAlreadyInProgress},
	{unix.EBADF, status.ErrcBadFileDescriptor},
	{unix.EBADMSG, status.ErrcBadMessage},
	{unix.EBUSY, status.ErrcDeviceOrResourceBusy},
	{unix.ECANCELED, status.ErrcOperationCanceled},
	{unix.ECHILD, status.ErrcNoChildProcess},
	{unix.ECONNABORTED, status.ErrcConnectionAborted},
	{unix.ECONNREFUSED, status.ErrcConnectionRefused},
	{unix.ECONNRESET, status.ErrcConnectionReset},
	{unix.EDEADLK, status.ErrcResourceDeadlockWouldOccur},
	{unix.EDESTADDRREQ, status.ErrcDestinationAddressRequired},
	{unix.EDOM, status.ErrcArgumentOutOfDomain},
	{unix.EEXIST, status.ErrcFileExists},
	{unix.EFAULT, status.ErrcBadAddress},
	{unix.EFBIG, status.ErrcFileTooLarge},
	{unix.EHOSTUNREACH, status.ErrcHostUnreachable},
	{unix.EILSEQ, status.ErrcIllegalByteSequence},
	{unix.EINPROGRESS, status.ErrcOperationInProgress},
	{unix.EINTR, status.ErrcInterrupted},
	{unix.EINVAL, status.ErrcInvalidArgument},
	{unix.EIO, status.ErrcIOError},
	{unix.EISCONN, status.ErrcAlreadyConnected},
	{unix.EISDIR, status.ErrcIsADirectory},
	{unix.ELOOP, status.ErrcTooManySymbolicLinkLevels},
	{unix.EMFILE, status.ErrcTooManyFilesOpen},
	{unix.EMLINK, status.ErrcTooManyLinks},
	{unix.EMSGSIZE, status.ErrcMessageSize},
	{unix.ENAMETOOLONG, status.ErrcFilenameTooLong},
	{unix.ENETDOWN, status.ErrcNetworkDown},
	{unix.ENETRESET, status.ErrcNetworkReset},
	{unix.ENETUNREACH, status.ErrcNetworkUnreachable},
	{unix.ENFILE, status.ErrcTooManyFilesOpenInSystem},
	{unix.ENOBUFS, status.ErrcNoBufferSpace},
	{unix.ENODEV, status.ErrcNoSuchDevice},
	{unix.ENOENT, status.ErrcNoSuchFileOrDirectory},
	{unix.ENOEXEC, status.ErrcExecutableFormatError},
	{unix.ENOLCK, status.ErrcNoLockAvailable},
	{unix.ENOMEM, status.ErrcNotEnoughMemory},
	{unix.ENOSYS, status.ErrcFunctionNotSupported},
	{unix.ENOTCONN, status.ErrcNotConnected},
	{unix.ENOTDIR, status.ErrcNotADirectory},
	{unix.ENOTEMPTY, status.ErrcDirectoryNotEmpty},
	{unix.ENOTSOCK, status.ErrcNotASocket},
	{unix.ENOTTY, status.ErrcInappropriateIOControlOperation},
	{unix.ENXIO, status.ErrcNoSuchDeviceOrAddress},
	{unix.EOPNOTSUPP, status.ErrcOperationNotSupported},
	{unix.EOVERFLOW, status.ErrcValueTooLarge},
	{unix.EPERM, status.ErrcOperationNotPermitted},
	{unix.EPIPE, status.ErrcBrokenPipe},
	{unix.EPROTO, status.ErrcProtocolError},
	{unix.EPROTONOSUPPORT, status.ErrcProtocolNotSupported},
	{unix.EPROTOTYPE, status.ErrcWrongProtocolType},
	{unix.ERANGE, status.ErrcResultOutOfRange},
	{unix.EROFS, status.ErrcReadOnlyFileSystem},
	{unix.ESPIPE, status.ErrcInvalidSeek},
	{unix.ESRCH, status.ErrcNoSuchProcess},
	{unix.ETIMEDOUT, status.ErrcTimedOut},
	{unix.EXDEV, status.ErrcCrossDeviceLink},
}

var errnoToErrc = func() map[unix.Errno]status.Errc {
	m := make(map[unix.Errno]status.Errc, len(errnoTable))
	for _, e := range errnoTable {
		if _, ok := m[e.errno]; !ok {
			m[e.errno] = e.errc
		}
	}
	return m
}()
