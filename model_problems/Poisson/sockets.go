package Poisson

import (
	"bufio"
	"fmt"
	"net"
)

// SendToVisServer streams the mesh and solution to a running GLVis server
// over a plain TCP socket. Failure here is not fatal to the solve: callers
// warn and continue.
func (c *Poisson) SendToVisServer(host string, port int) (err error) {
	var (
		conn net.Conn
	)
	if conn, err = net.Dial("tcp", fmt.Sprintf("%s:%d", host, port)); err != nil {
		return fmt.Errorf("unable to connect to visualization server %s:%d: %w", host, port, err)
	}
	defer conn.Close()
	w := bufio.NewWriter(conn)
	if c.Msh.Dim == 2 {
		fmt.Fprintf(w, "fem2d_gf_data\n")
	} else {
		fmt.Fprintf(w, "fem1d_gf_data\n")
	}
	c.Msh.Print(w)
	if err = c.U.Save(w); err != nil {
		return
	}
	err = w.Flush()
	return
}
