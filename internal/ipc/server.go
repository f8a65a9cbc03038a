package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"
	"time"

	"log/slog"

	"stemsync/internal/api"
	"stemsync/internal/daemon"
	"stemsync/internal/logging"
	"stemsync/internal/logs"
	"stemsync/internal/project"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path. The shutdown
// callback runs after a Stop request so the host process can exit.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger, shutdown func()) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logger, ctx: ctx, shutdown: shutdown}
	if err := rpcServer.RegisterName("Stemsync", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon   *daemon.Daemon
	logger   *slog.Logger
	ctx      context.Context
	shutdown func()
}

func projectUpdate(req UpdateStemRequest) project.StemUpdate {
	return project.StemUpdate{Volume: req.Volume, Pan: req.Pan}
}

func wireError(err error) *api.Error {
	if err == nil {
		return nil
	}
	return &api.Error{Kind: api.ErrorKind(err), Message: err.Error()}
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status()
	resp.Running = status.Running
	resp.State = string(status.Workflow.State)
	resp.Credits = status.Workflow.Balance
	resp.Project = api.FromProject(status.Workflow.Project)
	resp.LastError = status.Workflow.LastError
	resp.LockPath = status.LockFilePath
	resp.APIAddress = status.APIAddress
	return nil
}

func (s *service) Upload(req UploadRequest, resp *UploadResponse) error {
	s.logger.Debug("upload requested", logging.String("source", req.Path))
	p, err := s.daemon.Upload(s.ctx, req.Path)
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	resp.Project = api.FromProject(p)
	s.logger.Info("upload separated",
		logging.String("project_id", p.ID),
		logging.String("title", p.Title))
	return nil
}

func (s *service) Packages(_ PackagesRequest, resp *PackagesResponse) error {
	resp.Packages = api.FromPackages(s.daemon.Packages())
	return nil
}

func (s *service) Purchase(req PurchaseRequest, resp *PurchaseResponse) error {
	s.logger.Debug("purchase requested", logging.String("package", req.PackageID))
	receipt, err := s.daemon.Purchase(s.ctx, req.PackageID)
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	dto := api.FromReceipt(receipt)
	resp.Receipt = &dto
	s.logger.Info("credits purchased",
		logging.String("package", req.PackageID),
		logging.Int("new_balance", receipt.NewBalance))
	return nil
}

func (s *service) UpdateStem(req UpdateStemRequest, resp *ProjectResponse) error {
	p, err := s.daemon.UpdateStem(req.StemID, projectUpdate(req))
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	resp.Project = api.FromProject(p)
	return nil
}

func (s *service) Rename(req RenameRequest, resp *ProjectResponse) error {
	p, err := s.daemon.Rename(req.Title)
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	resp.Project = api.FromProject(p)
	return nil
}

func (s *service) Save(_ SaveRequest, resp *ProjectResponse) error {
	p, err := s.daemon.Save()
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	resp.Project = api.FromProject(p)
	return nil
}

func (s *service) Export(_ ExportRequest, resp *ExportResponse) error {
	path, err := s.daemon.Export(s.ctx)
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	resp.Path = path
	s.logger.Info("mix exported", logging.String("path", path))
	return nil
}

func (s *service) Share(_ ShareRequest, resp *ShareResponse) error {
	url, err := s.daemon.Share()
	if err != nil {
		resp.Err = wireError(err)
		return nil
	}
	resp.URL = url
	return nil
}

func (s *service) Reset(_ ResetRequest, resp *ResetResponse) error {
	if err := s.daemon.Reset(); err != nil {
		resp.Err = wireError(err)
		return nil
	}
	s.logger.Info("project reset")
	return nil
}

func (s *service) LogTail(req LogTailRequest, resp *LogTailResponse) error {
	logPath := s.daemon.LogPath()
	if logPath == "" {
		resp.Offset = 0
		return nil
	}
	wait := time.Duration(req.WaitMillis) * time.Millisecond
	if wait <= 0 && req.Follow {
		wait = time.Second
	}
	ctx := s.ctx
	if req.Follow && wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(s.ctx, wait+500*time.Millisecond)
		defer cancel()
	}
	result, err := logs.Tail(ctx, logPath, logs.TailOptions{
		Offset: req.Offset,
		Limit:  req.Limit,
		Follow: req.Follow,
		Wait:   wait,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			resp.Offset = result.Offset
			return nil
		}
		return err
	}
	resp.Lines = result.Lines
	resp.Offset = result.Offset
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	s.logger.Info("daemon stopped via IPC")
	if s.shutdown != nil {
		go s.shutdown()
	}
	return nil
}
