package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"stemsync/internal/api"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func responseError(e *api.Error) error {
	if e == nil {
		return nil
	}
	return api.KindError(e.Kind, e.Message)
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Stemsync.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Upload submits an audio file for separation and returns the new project.
func (c *Client) Upload(path string) (*Project, error) {
	var resp UploadResponse
	if err := c.client.Call("Stemsync.Upload", UploadRequest{Path: path}, &resp); err != nil {
		return nil, err
	}
	if err := responseError(resp.Err); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Packages returns the purchasable credit package catalog.
func (c *Client) Packages() ([]CreditPackage, error) {
	var resp PackagesResponse
	if err := c.client.Call("Stemsync.Packages", PackagesRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Packages, nil
}

// Purchase settles a credit package purchase.
func (c *Client) Purchase(packageID string) (*PurchaseReceipt, error) {
	var resp PurchaseResponse
	if err := c.client.Call("Stemsync.Purchase", PurchaseRequest{PackageID: packageID}, &resp); err != nil {
		return nil, err
	}
	if err := responseError(resp.Err); err != nil {
		return nil, err
	}
	return resp.Receipt, nil
}

// UpdateStem adjusts mix parameters on one stem of the active project.
func (c *Client) UpdateStem(req UpdateStemRequest) (*Project, error) {
	var resp ProjectResponse
	if err := c.client.Call("Stemsync.UpdateStem", req, &resp); err != nil {
		return nil, err
	}
	if err := responseError(resp.Err); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Rename retitles the active project.
func (c *Client) Rename(title string) (*Project, error) {
	var resp ProjectResponse
	if err := c.client.Call("Stemsync.Rename", RenameRequest{Title: title}, &resp); err != nil {
		return nil, err
	}
	if err := responseError(resp.Err); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Save persists the active project mix state.
func (c *Client) Save() (*Project, error) {
	var resp ProjectResponse
	if err := c.client.Call("Stemsync.Save", SaveRequest{}, &resp); err != nil {
		return nil, err
	}
	if err := responseError(resp.Err); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Export renders the active project mix and returns the output path.
func (c *Client) Export() (string, error) {
	var resp ExportResponse
	if err := c.client.Call("Stemsync.Export", ExportRequest{}, &resp); err != nil {
		return "", err
	}
	if err := responseError(resp.Err); err != nil {
		return "", err
	}
	return resp.Path, nil
}

// Share returns a shareable link for the active project.
func (c *Client) Share() (string, error) {
	var resp ShareResponse
	if err := c.client.Call("Stemsync.Share", ShareRequest{}, &resp); err != nil {
		return "", err
	}
	if err := responseError(resp.Err); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// Reset discards the active project.
func (c *Client) Reset() error {
	var resp ResetResponse
	if err := c.client.Call("Stemsync.Reset", ResetRequest{}, &resp); err != nil {
		return err
	}
	return responseError(resp.Err)
}

// LogTail returns log lines from the daemon.
func (c *Client) LogTail(req LogTailRequest) (*LogTailResponse, error) {
	var resp LogTailResponse
	if err := c.client.Call("Stemsync.LogTail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop requests daemon shutdown.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("Stemsync.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
