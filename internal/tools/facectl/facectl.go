// Package facectl drives the face bridge from the command line: it invokes
// client operations and can act as the registered event listener.
package facectl

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	gogrpc "google.golang.org/grpc"

	facev1 "github.com/louisbranch/facebridge/api/biometrics/face/v1"
	entrypoint "github.com/louisbranch/facebridge/internal/platform/cmd"
	"github.com/louisbranch/facebridge/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/facebridge/internal/platform/grpc"
	"github.com/louisbranch/facebridge/internal/services/bridge/face"
)

// OpListen registers facectl as the event listener and prints events.
const OpListen = "listen"

// ErrUnknownOperation indicates an operation name facectl does not support.
var ErrUnknownOperation = errors.New("unknown operation")

// Config holds facectl configuration.
type Config struct {
	SocketDir string        `env:"SOCKET_DIR"`
	Timeout   time.Duration `env:"CTL_TIMEOUT" envDefault:"10s"`
	Name      string        `env:"CTL_NAME" envDefault:"facectl"`
	Op        string
	Args      []string
}

// ParseConfig parses environment, flags, and the operation arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SocketDir, "socket-dir", cfg.SocketDir, "Directory holding service sockets")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Timeout for a single operation")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "Socket name used when listening for events")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if fs.NArg() == 0 {
		return Config{}, fmt.Errorf("operation is required (one of %s)", strings.Join(Operations(), ", "))
	}
	cfg.Op = strings.TrimSpace(fs.Arg(0))
	cfg.Args = fs.Args()[1:]
	if cfg.Op != OpListen {
		if _, ok := operations[cfg.Op]; !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownOperation, cfg.Op)
		}
	}
	return cfg, nil
}

// Operations lists the supported operation names.
func Operations() []string {
	names := make([]string, 0, len(operations)+1)
	for name := range operations {
		names = append(names, name)
	}
	names = append(names, OpListen)
	sort.Strings(names)
	return names
}

// Run executes the configured operation against the bridge.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	conn, err := gogrpc.NewClient(discovery.Target(cfg.SocketDir, discovery.ServiceBiometricsFace), platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial bridge: %w", err)
	}
	defer conn.Close()
	client := facev1.NewBiometricsFaceClient(conn)

	if cfg.Op == OpListen {
		return listen(ctx, cfg, client, out)
	}
	op, ok := operations[cfg.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, cfg.Op)
	}
	if len(cfg.Args) != len(op.args) {
		return fmt.Errorf("%s expects %d argument(s) (%s), got %d", cfg.Op, len(op.args), strings.Join(op.args, " "), len(cfg.Args))
	}
	callCtx, cancel := withTimeout(ctx, cfg.Timeout)
	defer cancel()
	line, err := op.call(callCtx, client, cfg.Args)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Op, err)
	}
	_, err = fmt.Fprintf(out, "%s: %s\n", cfg.Op, line)
	return err
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

type operation struct {
	args []string
	call func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error)
}

// Variable-length feature lists are passed as one comma-separated argument.
var operations = map[string]operation{
	"set-active-user": {
		args: []string{"<user-id>", "<store-path>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			userID, err := parseInt32(args[0])
			if err != nil {
				return "", err
			}
			return statusLine(client.SetActiveUser(ctx, &facev1.SetActiveUserRequest{UserId: userID, StorePath: args[1]}))
		},
	},
	"generate-challenge": {
		args: []string{"<timeout-sec>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			timeout, err := parseUint32(args[0])
			if err != nil {
				return "", err
			}
			return uint64Line(client.GenerateChallenge(ctx, &facev1.GenerateChallengeRequest{ChallengeTimeoutSec: timeout}))
		},
	},
	"enroll": {
		args: []string{"<hat-hex>", "<timeout-sec>", "<features>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			hat, err := parseHex(args[0])
			if err != nil {
				return "", err
			}
			timeout, err := parseUint32(args[1])
			if err != nil {
				return "", err
			}
			features, err := parseFeatures(args[2])
			if err != nil {
				return "", err
			}
			return statusLine(client.Enroll(ctx, &facev1.EnrollRequest{Hat: hat, TimeoutSec: timeout, DisabledFeatures: features}))
		},
	},
	"revoke-challenge": {
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, _ []string) (string, error) {
			return statusLine(client.RevokeChallenge(ctx, &facev1.Empty{}))
		},
	},
	"set-feature": {
		args: []string{"<feature>", "<enabled>", "<hat-hex>", "<face-id>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			feature, err := parseInt32(args[0])
			if err != nil {
				return "", err
			}
			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return "", fmt.Errorf("parse enabled %q: %w", args[1], err)
			}
			hat, err := parseHex(args[2])
			if err != nil {
				return "", err
			}
			faceID, err := parseUint32(args[3])
			if err != nil {
				return "", err
			}
			return statusLine(client.SetFeature(ctx, &facev1.SetFeatureRequest{Feature: feature, Enabled: enabled, Hat: hat, FaceId: faceID}))
		},
	},
	"get-feature": {
		args: []string{"<feature>", "<face-id>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			feature, err := parseInt32(args[0])
			if err != nil {
				return "", err
			}
			faceID, err := parseUint32(args[1])
			if err != nil {
				return "", err
			}
			resp, err := client.GetFeature(ctx, &facev1.GetFeatureRequest{Feature: feature, FaceId: faceID})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("status=%s value=%t", face.Status(resp.Status), resp.Value), nil
		},
	},
	"get-authenticator-id": {
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, _ []string) (string, error) {
			return uint64Line(client.GetAuthenticatorId(ctx, &facev1.Empty{}))
		},
	},
	"cancel": {
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, _ []string) (string, error) {
			return statusLine(client.Cancel(ctx, &facev1.Empty{}))
		},
	},
	"enumerate": {
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, _ []string) (string, error) {
			return statusLine(client.Enumerate(ctx, &facev1.Empty{}))
		},
	},
	"remove": {
		args: []string{"<face-id>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			faceID, err := parseUint32(args[0])
			if err != nil {
				return "", err
			}
			return statusLine(client.Remove(ctx, &facev1.RemoveRequest{FaceId: faceID}))
		},
	},
	"authenticate": {
		args: []string{"<operation-id>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			operationID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return "", fmt.Errorf("parse operation id %q: %w", args[0], err)
			}
			return statusLine(client.Authenticate(ctx, &facev1.AuthenticateRequest{OperationId: operationID}))
		},
	},
	"user-activity": {
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, _ []string) (string, error) {
			return statusLine(client.UserActivity(ctx, &facev1.Empty{}))
		},
	},
	"reset-lockout": {
		args: []string{"<hat-hex>"},
		call: func(ctx context.Context, client facev1.BiometricsFaceClient, args []string) (string, error) {
			hat, err := parseHex(args[0])
			if err != nil {
				return "", err
			}
			return statusLine(client.ResetLockout(ctx, &facev1.ResetLockoutRequest{Hat: hat}))
		},
	},
}

func statusLine(resp *facev1.StatusResponse, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return "status=" + face.Status(resp.Status).String(), nil
}

func uint64Line(resp *facev1.OptionalUint64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("status=%s value=%d", face.Status(resp.Status), resp.Value), nil
}

func parseInt32(raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return int32(v), nil
}

func parseUint32(raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return uint32(v), nil
}

func parseHex(raw string) ([]byte, error) {
	if raw == "-" {
		return nil, nil
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("parse hex %q: %w", raw, err)
	}
	return b, nil
}

func parseFeatures(raw string) ([]int32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	features := make([]int32, 0, len(parts))
	for _, part := range parts {
		v, err := parseInt32(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		features = append(features, v)
	}
	return features, nil
}
